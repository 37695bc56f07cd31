package port

import (
	"context"

	"mesa-campaigns/internal/core/domain"
)

// DashboardUseCase defines the operations behind the campaign board. This
// interface is the primary port into the application; the HTTP adapter and
// the CLI drive it.
type DashboardUseCase interface {
	// Board composes the board for a selection from the latest source
	// snapshots. It never blocks on the remote sources.
	Board(ctx context.Context, sel domain.Selection) domain.Board

	// Campaign returns a campaign by id from the latest campaign snapshot.
	// ErrNotReady is returned while the snapshot is unavailable and
	// ErrCampaignNotFound when the id is unknown.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// Overview returns status counts and totals for the filtered campaigns.
	Overview(ctx context.Context, sel domain.Selection) (*Overview, error)

	// Refresh reloads both sources concurrently. A failing source is
	// recorded as failed and reported in the returned error; the other
	// source is unaffected.
	Refresh(ctx context.Context) error
}

// Overview is the summary shown above the board and returned by the stats
// endpoint.
type Overview struct {
	Counts domain.StatusCounts `json:"counts"`
	Total  domain.Stats        `json:"total"`
	Shown  int                 `json:"shown"`
}
