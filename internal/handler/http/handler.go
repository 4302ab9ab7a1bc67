package http

import (
	"time"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
)

type Handler struct {
	services *service.Services
	sessions session.Store

	// ids generates trace ids for requests that arrive without one.
	ids utils.IDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		ids:            utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
