package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/utils"
	"github.com/MKhiriev/go-deck-builder/models"
)

type chartFunc func(ctx context.Context, state session.State) (models.Chart, error)

func (h *Handler) expenseChart(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, h.services.ChartService.PriceChart)
}

func (h *Handler) manaCurveChart(w http.ResponseWriter, r *http.Request) {
	h.chart(w, r, h.services.ChartService.ManaCurveChart)
}

// chart renders a histogram of the active deck.
func (h *Handler) chart(w http.ResponseWriter, r *http.Request, build chartFunc) {
	state := stateFrom(r)
	if _, _, ok := h.gate(w, r, session.Action{Kind: session.ActionChart}); !ok {
		return
	}

	chart, err := build(r.Context(), state)
	if err != nil {
		h.fail(w, r, session.ActionChart, err)
		return
	}

	if _, err = utils.WriteJSON(w, chart, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("chart", chart.Title).Msg("error writing chart")
	}
}
