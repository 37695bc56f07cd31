package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"mesa-campaigns/internal/core/port"
)

// handleListCampaigns returns the board for the selection in the query as
// JSON. The board carries its own load state, so a board that is still
// loading or failed is a successful response.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.svc.Board(r.Context(), sel))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.Campaign(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrNotReady):
		h.writeError(w, r, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeError(w, r, http.StatusNotFound, err.Error())
	case err != nil:
		h.log(r).Error("campaign lookup error", slog.Any("error", err))
		h.writeError(w, r, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, r, http.StatusOK, c)
	}
}

// handleRefresh reloads both sources and reports the first failure with
// 502. The board reflects the per-source outcome either way.
func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Refresh(r.Context()); err != nil {
		h.log(r).Warn("refresh failed", slog.Any("error", err))
		h.writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
