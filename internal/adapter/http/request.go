package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-campaigns/internal/core/domain"
)

// parseSelection reads the board selection from the query. Missing values
// fall back to the defaults; malformed ones are rejected.
func parseSelection(q url.Values) (domain.Selection, error) {
	sel := domain.DefaultSelection()

	group, err := domain.ParseGroupBy(q.Get("group"))
	if err != nil {
		return sel, err
	}
	sel.GroupBy = group

	status, err := domain.ParseStatusFilter(q.Get("status"))
	if err != nil {
		return sel, err
	}
	sel.Status = status
	sel.Search = q.Get("q")

	if v := q.Get("page"); v != "" {
		if sel.Page, err = strconv.Atoi(v); err != nil || sel.Page < 1 {
			return sel, fmt.Errorf("invalid page %q", v)
		}
	}
	if v := q.Get("size"); v != "" {
		if sel.PageSize, err = strconv.Atoi(v); err != nil {
			return sel, fmt.Errorf("invalid size %q", v)
		}
	}
	return sel, sel.Validate()
}

func campaignID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid campaign id %q", raw)
	}
	return id, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log(r).Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}
