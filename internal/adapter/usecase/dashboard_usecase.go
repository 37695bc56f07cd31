package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
)

// DashboardUseCase implements port.DashboardUseCase. It keeps the latest
// snapshot of each source and composes boards from them on demand; all
// derived state is recomputed per call.
type DashboardUseCase struct {
	source port.CampaignSource
	logger *slog.Logger

	mu        sync.RWMutex
	campaigns snapshot[[]domain.Campaign]
	catalog   snapshot[[]domain.Product]
}

// snapshot is the stored outcome of a source together with the generation
// of the read that produced it. Reads are numbered when they start; a
// result is stored only if no later read has been stored already.
type snapshot[T any] struct {
	started uint64
	stored  uint64
	value   domain.Loadable[T]
}

// NewDashboardUseCase creates a use case reading from source. Both sources
// start in the loading state until the first Refresh completes.
func NewDashboardUseCase(source port.CampaignSource, logger *slog.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		source:    source,
		logger:    logger,
		campaigns: snapshot[[]domain.Campaign]{value: domain.Loading[[]domain.Campaign]()},
		catalog:   snapshot[[]domain.Product]{value: domain.Loading[[]domain.Product]()},
	}
}

// Refresh reloads the campaign list and the catalog in parallel. Each
// snapshot is replaced once its own read completes, so the previous data
// stays visible while a reload is in flight. Overlapping refreshes never
// replace a newer result with an older one, and a read cut short by ctx
// keeps the previous snapshot. The first failure is returned.
func (u *DashboardUseCase) Refresh(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return load(ctx, u, &u.campaigns, "campaigns", u.source.ListCampaigns)
	})
	g.Go(func() error {
		return load(ctx, u, &u.catalog, "products", u.source.ListProducts)
	})

	return g.Wait()
}

func load[T any](
	ctx context.Context,
	u *DashboardUseCase,
	s *snapshot[[]T],
	name string,
	read func(context.Context) ([]T, error),
) error {
	u.mu.Lock()
	s.started++
	gen := s.started
	u.mu.Unlock()

	data, err := read(ctx)
	if err != nil {
		err = fmt.Errorf("list %s: %w", name, err)
	}

	logger := u.logger.With(slog.String("source", name), slog.Uint64("generation", gen))

	u.mu.Lock()
	defer u.mu.Unlock()
	switch {
	case gen < s.stored:
		logger.Debug("stale result dropped")
	case err != nil && ctx.Err() != nil:
		logger.Debug("read interrupted, keeping previous snapshot", slog.Any("error", err))
	case err != nil:
		s.value, s.stored = domain.Failed[[]T](err), gen
		logger.Error("load failed", slog.Any("error", err))
	default:
		s.value, s.stored = domain.Ready(data), gen
		logger.Debug("loaded", slog.Int("count", len(data)))
	}
	return err
}

// Run refreshes the sources once and then every interval until ctx is
// cancelled. A non-positive interval loads once and returns.
func (u *DashboardUseCase) Run(ctx context.Context, interval time.Duration) {
	_ = u.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = u.Refresh(ctx)
		}
	}
}

// Board composes the board for sel from the current snapshots.
func (u *DashboardUseCase) Board(_ context.Context, sel domain.Selection) domain.Board {
	campaigns, catalog := u.snapshot()
	return domain.BuildBoard(campaigns, catalog, sel)
}

// Campaign returns a campaign by id.
func (u *DashboardUseCase) Campaign(_ context.Context, id int64) (*domain.Campaign, error) {
	campaigns, _ := u.snapshot()
	if !campaigns.Ready() {
		return nil, port.ErrNotReady
	}
	c, ok := domain.FindCampaign(campaigns.Data, id)
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrCampaignNotFound)
	}
	return &c, nil
}

// Overview returns the status counts of all campaigns and the totals of
// the campaigns matching sel's status filter and search.
func (u *DashboardUseCase) Overview(_ context.Context, sel domain.Selection) (*port.Overview, error) {
	campaigns, _ := u.snapshot()
	if campaigns.State == domain.StateFailed {
		return nil, campaigns.Err
	}
	if !campaigns.Ready() {
		return nil, port.ErrNotReady
	}
	buckets := domain.SplitByStatus(campaigns.Data)
	filtered := domain.Filter(buckets, sel.Status, sel.Search)
	return &port.Overview{
		Counts: buckets.Counts(),
		Total:  domain.Aggregate(filtered),
		Shown:  len(filtered),
	}, nil
}

func (u *DashboardUseCase) snapshot() (domain.Loadable[[]domain.Campaign], domain.Loadable[[]domain.Product]) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.campaigns.value, u.catalog.value
}
