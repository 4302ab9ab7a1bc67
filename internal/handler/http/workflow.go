package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/go-chi/chi/v5"
)

const (
	usernameParam = "username"
	cardNameParam = "cardName"
	deckNameParam = "deckName"
	queryParam    = "q"
)

// pathParam returns the decoded URL parameter. chi matches on the raw path
// when the request carries escaped slashes, e.g. "Fire%20%2F%2F%20Ice".
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// gate runs the session transition of action. When the action is denied it
// redirects and reports false.
func (h *Handler) gate(w http.ResponseWriter, r *http.Request, action session.Action) (session.State, session.Outcome, bool) {
	next, outcome := session.Apply(stateFrom(r), action)
	if outcome.Allowed {
		return next, outcome, true
	}

	if outcome.Redirect == session.ErrorPath {
		reason := ErrUnknownAction
		if action.Kind == session.ActionAddCard {
			reason = service.ErrNoCardSelected
		}
		kind, _ := classify(reason)
		logger.FromRequest(r).Warn().
			Err(reason).
			Str("kind", string(kind)).
			Str("action", action.Kind.String()).
			Msg("workflow action denied")
	}
	utils.Redirect(w, r, outcome.Redirect)
	return next, outcome, false
}

// ownDashboard redirects to the caller's own dashboard when the path names
// another user and reports whether the request may go on.
func ownDashboard(w http.ResponseWriter, r *http.Request, state session.State) bool {
	if pathParam(r, usernameParam) == state.Username {
		return true
	}
	utils.Redirect(w, r, session.DashboardPath(state.Username, pathParam(r, cardNameParam)))
	return false
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r)
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionDashboard}); !ok {
		return
	}
	if !ownDashboard(w, r, state) {
		return
	}

	cardName := pathParam(r, cardNameParam)

	view, err := h.services.WorkflowService.Dashboard(r.Context(), state, cardName, r.URL.Query().Get(queryParam))
	if err != nil {
		h.fail(w, r, session.ActionDashboard, err)
		return
	}

	if _, err = utils.WriteJSON(w, view, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing dashboard")
	}
}

// search looks a card up and remembers it as the selected card.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionSearch}); !ok {
		return
	}
	if !ownDashboard(w, r, stateFrom(r)) {
		return
	}
	if err := parseForm(w, r); err != nil {
		writeFormError(w, r, formSearch, nil, err)
		return
	}

	form := searchFormFrom(r)
	if _, err := h.services.WorkflowService.Search(r.Context(), form.CardName); err != nil {
		if isInlineFormError(err) {
			writeFormError(w, r, formSearch, formValues(r, formSearch), err)
			return
		}
		h.fail(w, r, session.ActionSearch, err)
		return
	}

	next, outcome := session.Apply(stateFrom(r), session.Action{Kind: session.ActionSearch, Value: form.CardName})
	if h.saveState(w, r, session.ActionSearch, next) {
		utils.Redirect(w, r, outcome.Redirect)
	}
}

// random selects a random card from the catalog.
func (h *Handler) random(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionRandom}); !ok {
		return
	}

	record, err := h.services.WorkflowService.Random(r.Context())
	if err != nil {
		h.fail(w, r, session.ActionRandom, err)
		return
	}

	next, outcome := session.Apply(stateFrom(r), session.Action{Kind: session.ActionRandom, Value: record.Name})
	if h.saveState(w, r, session.ActionRandom, next) {
		utils.Redirect(w, r, outcome.Redirect)
	}
}

// addCard stores the selected card in the active deck, or in the default
// deck when none is active.
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r)
	_, outcome, ok := h.gate(w, r, session.Action{Kind: session.ActionAddCard})
	if !ok {
		return
	}

	card, err := h.services.WorkflowService.AddCard(r.Context(), state)
	if err != nil {
		h.fail(w, r, session.ActionAddCard, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("card", card.Name).
		Int64("deck_id", card.DeckID).
		Msg("card added")
	utils.Redirect(w, r, outcome.Redirect)
}

// removeCard deletes every card of the user with the given name.
func (h *Handler) removeCard(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r)
	_, outcome, ok := h.gate(w, r, session.Action{Kind: session.ActionRemoveCard})
	if !ok {
		return
	}

	cardName := pathParam(r, cardNameParam)
	removed, err := h.services.WorkflowService.RemoveCard(r.Context(), state, cardName)
	if err != nil {
		h.fail(w, r, session.ActionRemoveCard, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("card", cardName).
		Int64("removed", removed).
		Msg("cards removed")
	utils.Redirect(w, r, outcome.Redirect)
}

func (h *Handler) addDeckPage(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionAddDeck}); !ok {
		return
	}
	writeForm(w, r, newFormView(formDeck), http.StatusOK)
}

// addDeck creates a deck named after its commander and makes it active.
func (h *Handler) addDeck(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r)
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionAddDeck}); !ok {
		return
	}
	if err := parseForm(w, r); err != nil {
		writeFormError(w, r, formDeck, nil, err)
		return
	}

	form := deckFormFrom(r)
	deck, err := h.services.WorkflowService.AddDeck(r.Context(), state, form.CommanderName)
	if err != nil {
		if isInlineFormError(err) {
			writeFormError(w, r, formDeck, formValues(r, formDeck), err)
			return
		}
		h.fail(w, r, session.ActionAddDeck, err)
		return
	}

	next, outcome := session.Apply(state, session.Action{Kind: session.ActionAddDeck, Value: deck.Name})
	if !h.saveState(w, r, session.ActionAddDeck, next) {
		return
	}

	logger.FromRequest(r).Info().
		Str("deck", deck.Name).
		Int64("deck_id", deck.DeckID).
		Msg("deck created")
	utils.Redirect(w, r, outcome.Redirect)
}

// setDeck switches the active deck. Only the session changes.
func (h *Handler) setDeck(w http.ResponseWriter, r *http.Request) {
	deckName := pathParam(r, deckNameParam)
	next, outcome, ok := h.gate(w, r, session.Action{Kind: session.ActionSetDeck, Value: deckName})
	if !ok {
		return
	}
	if h.saveState(w, r, session.ActionSetDeck, next) {
		utils.Redirect(w, r, outcome.Redirect)
	}
}

// previewOnly shows a stored card without changing the session.
func (h *Handler) previewOnly(w http.ResponseWriter, r *http.Request) {
	state := stateFrom(r)
	cardName := pathParam(r, cardNameParam)
	_, outcome, ok := h.gate(w, r, session.Action{Kind: session.ActionPreview, Value: cardName})
	if !ok {
		return
	}

	if _, err := h.services.WorkflowService.PreviewOnly(r.Context(), state, cardName); err != nil {
		h.fail(w, r, session.ActionPreview, err)
		return
	}

	utils.Redirect(w, r, outcome.Redirect)
}

func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"error": http.StatusText(http.StatusNotFound)}
	if _, err := utils.WriteJSON(w, body, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error page")
	}
}
