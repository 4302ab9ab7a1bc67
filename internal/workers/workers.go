package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends workers to the group. It must not be called during Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. It returns the first
// error; that error cancels the context passed to the remaining workers.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
