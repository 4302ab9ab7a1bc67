package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
)

func newTestSessions(t *testing.T) session.Store {
	t.Helper()
	s, err := session.NewCookieStore(config.App{SessionSignKey: "handlers-test-sign-key-0123456789"})
	require.NoError(t, err)
	return s
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, newTestSessions(t), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, newTestSessions(t), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}
	sessions := newTestSessions(t)

	h1, err := NewHandlers(&service.Services{}, sessions, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(&service.Services{}, sessions, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
