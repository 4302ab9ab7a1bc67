package http

import (
	"net/http"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.Redirect(w, r, session.LoginPath)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	writeForm(w, r, newFormView(formRegister), http.StatusOK)
}

// register creates the account and sends the user to the login page. The
// session is left untouched.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeFormError(w, r, formRegister, nil, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), registerFormFrom(r))
	if err != nil {
		if isInlineFormError(err) {
			writeFormError(w, r, formRegister, formValues(r, formRegister), err)
			return
		}
		h.fail(w, r, session.ActionLogin, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user registered")
	utils.Redirect(w, r, session.LoginPath)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	writeForm(w, r, newFormView(formLogin), http.StatusOK)
}

// login authenticates the form and starts a fresh session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeFormError(w, r, formLogin, nil, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(r.Context(), loginFormFrom(r))
	if err != nil {
		if isInlineFormError(err) {
			writeFormError(w, r, formLogin, formValues(r, formLogin), err)
			return
		}
		h.fail(w, r, session.ActionLogin, err)
		return
	}

	next, outcome := session.Apply(stateFrom(r), session.Action{Kind: session.ActionLogin, Value: user.Username})
	if !outcome.Allowed {
		utils.Redirect(w, r, outcome.Redirect)
		return
	}
	if !h.saveState(w, r, session.ActionLogin, next) {
		return
	}

	logger.FromRequest(r).Info().Str("username", user.Username).Msg("user logged in")
	utils.Redirect(w, r, outcome.Redirect)
}

// logout clears the whole session.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	_, outcome := session.Apply(stateFrom(r), session.Action{Kind: session.ActionLogout})
	h.sessions.Clear(w)
	utils.Redirect(w, r, outcome.Redirect)
}
