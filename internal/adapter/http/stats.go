package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// handleStatsOverview returns status counts and the aggregate totals of the
// campaigns matching the status and search query parameters. Until the
// campaign list is loaded it answers 503.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.svc.Overview(r.Context(), sel)
	switch {
	case errors.Is(err, port.ErrNotReady):
		h.writeError(w, r, http.StatusServiceUnavailable, err.Error())
	case err != nil:
		h.log(r).Error("stats error", slog.Any("error", err))
		h.writeError(w, r, http.StatusBadGateway, err.Error())
	default:
		h.writeJSON(w, r, http.StatusOK, overview)
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Campaigns string `json:"campaigns"`
	Catalog   string `json:"catalog"`
}

// handleHealth reports liveness together with the load state of both
// sources.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	b := h.svc.Board(r.Context(), domain.DefaultSelection())
	h.writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "ok",
		Campaigns: string(b.CampaignsState),
		Catalog:   string(b.CatalogState),
	})
}
