package server

import "context"

// Server serves requests until ctx is cancelled or a stop signal arrives.
type Server interface {
	// RunServer blocks until every listener has shut down. It returns nil
	// after a graceful stop.
	RunServer(ctx context.Context) error
}
