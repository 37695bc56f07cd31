package port

import (
	"context"
	"errors"

	"mesa-campaigns/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when no campaign has the requested id.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrNotReady is returned when the campaign list has not loaded yet or
	// its last load failed.
	ErrNotReady = errors.New("campaigns not loaded")
)

// CampaignSource defines the remote reads the dashboard depends on. It is an
// outbound port in hexagonal architecture. The two reads are independent
// and implementations must be safe for concurrent use.
type CampaignSource interface {
	// ListCampaigns returns every campaign of the account.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListProducts returns the product catalog in its reference order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
