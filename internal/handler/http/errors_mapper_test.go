package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-deck-builder/internal/adapter"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/internal/validators"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   errorKind
		wantStatus int
	}{
		{"field errors", validators.FieldErrors{"email": validators.ErrInvalidEmail}, kindValidation, http.StatusUnprocessableEntity},
		{"wrapped field errors", fmt.Errorf("form: %w", validators.FieldErrors{"name": validators.ErrRequired}), kindValidation, http.StatusUnprocessableEntity},
		{"bad form body", fmt.Errorf("%w: eof", ErrParsingForm), kindValidation, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, kindAuth, http.StatusUnauthorized},
		{"catalog failure", fmt.Errorf("%w: %w", adapter.ErrLookupFailure, adapter.ErrNotFound), kindLookup, http.StatusBadGateway},
		{"missing card", fmt.Errorf("find: %w", store.ErrCardNotFound), kindNotFound, http.StatusNotFound},
		{"missing deck", store.ErrDeckNotFound, kindNotFound, http.StatusNotFound},
		{"no active deck", service.ErrNoActiveDeck, kindNotFound, http.StatusNotFound},
		{"no card selected", service.ErrNoCardSelected, kindNotFound, http.StatusNotFound},
		{"duplicate user", fmt.Errorf("insert: %w", store.ErrUserAlreadyExists), kindUniqueViolation, http.StatusConflict},
		{"anything else", errors.New("disk full"), kindInternal, http.StatusInternalServerError},
		{"query failure", store.ErrExecutingQuery, kindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, status := classify(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestFormMessage_HidesInternalCauses(t *testing.T) {
	assert.Equal(t, store.ErrUserAlreadyExists.Error(), formMessage(fmt.Errorf("pq: duplicate key: %w", store.ErrUserAlreadyExists)))
	assert.Equal(t, "Internal Server Error", formMessage(errors.New("connection refused 10.0.0.3:5432")))
}
