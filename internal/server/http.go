package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// httpServer is a [workers.Worker] serving one HTTP listener.
type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger

	// ready is closed once the listener is bound; addr is set before.
	ready chan struct{}
	addr  string
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		ready:           make(chan struct{}),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (h *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %q: %w", h.server.Addr, err)
	}
	h.addr = ln.Addr().String()
	close(h.ready)

	h.logger.Info().Str("address", h.addr).Msg("HTTP server is listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownErr := h.Shutdown()
	<-serveErr
	return shutdownErr
}

// Shutdown stops accepting connections and waits for in-flight requests
// up to the shutdown timeout.
func (h *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown failed")
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	h.logger.Info().Msg("HTTP server stopped")
	return nil
}
