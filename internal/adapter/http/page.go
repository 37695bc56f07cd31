package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/view"
)

const boardTitle = "Рекламные кампании"

// handleBoardPage renders the campaign board. HTMX requests receive only
// the board fragment so the poll can swap it in place.
func (h *Handler) handleBoardPage(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r.URL.Query())
	if err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, "Некорректный запрос", err.Error())
		return
	}

	board := h.svc.Board(r.Context(), sel)
	if board.State == domain.StateFailed {
		h.log(r).Warn("board unavailable", slog.String("error", board.Error))
	}

	if isHTMX(r) {
		templ.Handler(view.Board(board)).ServeHTTP(w, r)
		return
	}
	pending := board.State == domain.StateLoading
	templ.Handler(view.Page(boardTitle, pending, view.Board(board))).ServeHTTP(w, r)
}

// handleEditPage renders a single campaign.
func (h *Handler) handleEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.renderMessage(w, r, http.StatusBadRequest, "Некорректный запрос", err.Error())
		return
	}

	c, err := h.svc.Campaign(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrNotReady):
		templ.Handler(
			view.Page(boardTitle, true, view.Message("Загрузка", "Кампании ещё загружаются")),
			templ.WithStatus(http.StatusServiceUnavailable),
		).ServeHTTP(w, r)
	case errors.Is(err, port.ErrCampaignNotFound):
		h.renderMessage(w, r, http.StatusNotFound, "Кампания не найдена", err.Error())
	case err != nil:
		h.log(r).Error("campaign lookup error", slog.Any("error", err))
		h.renderMessage(w, r, http.StatusInternalServerError, "Ошибка", "internal error")
	default:
		templ.Handler(view.Page(c.Name, false, view.CampaignDetail(*c))).ServeHTTP(w, r)
	}
}

func (h *Handler) renderMessage(w http.ResponseWriter, r *http.Request, status int, title, text string) {
	templ.Handler(view.Page(title, false, view.Message(title, text)), templ.WithStatus(status)).ServeHTTP(w, r)
}
