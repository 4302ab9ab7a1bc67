package http

import (
	"net/http"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/rs/zerolog"
)

// withSession loads the session cookie into the request context. An
// invalid cookie yields the anonymous state.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Load(r)
		ctx := session.NewContext(r.Context(), state)

		if state.Username != "" {
			l := logger.FromContext(ctx).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("username", state.Username)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// stateFrom returns the session loaded by withSession.
func stateFrom(r *http.Request) session.State {
	state, _ := session.FromContext(r.Context())
	return state
}

// saveState stores the next session state. The caller redirects afterwards.
func (h *Handler) saveState(w http.ResponseWriter, r *http.Request, action session.ActionKind, next session.State) bool {
	if err := h.sessions.Save(w, next); err != nil {
		h.fail(w, r, action, err)
		return false
	}
	return true
}
