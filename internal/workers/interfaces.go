// Package workers runs long-lived background components of the server as
// one group. The first worker to fail cancels the others.
package workers

import "context"

// Worker is a long-lived component. Run blocks until ctx is cancelled or
// the worker fails, and returns nil after a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
