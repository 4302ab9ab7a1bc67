package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deck-builder/internal/adapter"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/MKhiriev/go-deck-builder/internal/validators"
)

// errorKind names a failure class in logs.
type errorKind string

const (
	kindValidation      errorKind = "validation"
	kindAuth            errorKind = "auth"
	kindLookup          errorKind = "lookup"
	kindNotFound        errorKind = "not_found"
	kindUniqueViolation errorKind = "unique_violation"
	kindInternal        errorKind = "internal"
)

type kindRule struct {
	target error
	kind   errorKind
	status int
}

// kindRules is checked in order; the first match wins.
var kindRules = []kindRule{
	{validators.ErrValidation, kindValidation, http.StatusUnprocessableEntity},
	{ErrParsingForm, kindValidation, http.StatusBadRequest},
	{service.ErrInvalidCredentials, kindAuth, http.StatusUnauthorized},
	{service.ErrNotAuthenticated, kindAuth, http.StatusUnauthorized},
	{adapter.ErrLookupFailure, kindLookup, http.StatusBadGateway},
	{store.ErrCardNotFound, kindNotFound, http.StatusNotFound},
	{store.ErrDeckNotFound, kindNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, kindNotFound, http.StatusNotFound},
	{service.ErrNoActiveDeck, kindNotFound, http.StatusNotFound},
	{service.ErrNoCardSelected, kindNotFound, http.StatusNotFound},
	{ErrUnknownAction, kindNotFound, http.StatusNotFound},
	{store.ErrUserAlreadyExists, kindUniqueViolation, http.StatusConflict},
}

func classify(err error) (errorKind, int) {
	for _, rule := range kindRules {
		if errors.Is(err, rule.target) {
			return rule.kind, rule.status
		}
	}
	return kindInternal, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := classify(err)
	return status
}

// fail is the single failure boundary of the workflow handlers. It logs the
// error kind with the request logger and redirects to the error page.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action session.ActionKind, err error) {
	kind, _ := classify(err)
	logger.FromRequest(r).Err(err).
		Str("kind", string(kind)).
		Str("action", action.String()).
		Msg("workflow action failed")
	utils.Redirect(w, r, session.ErrorPath)
}
