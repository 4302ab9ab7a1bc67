// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/handler/http"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions session.Store, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
