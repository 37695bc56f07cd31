package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-campaigns/internal/core/port"
)

// Handler is the inbound HTTP adapter. It serves the board pages and the
// JSON API on top of a port.DashboardUseCase.
type Handler struct {
	svc    port.DashboardUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(htmx)

	r.Get("/", h.handleBoardPage)
	r.Get("/edit/{id}", h.handleEditPage)
	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Post("/refresh", h.handleRefresh)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
