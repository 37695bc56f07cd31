package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func views(v int64) *int64 { return &v }

var (
	testCampaigns = []domain.Campaign{
		{ID: 1, Name: "Spring shoes", StatusID: domain.StatusCodeRunning, Type: 8, Nms: []int64{100}, Views: views(100)},
		{ID: 2, Name: "Autumn shoes", StatusID: domain.StatusCodePaused, Type: 6, Nms: []int64{100, 200}, Views: views(50)},
		{ID: 3, Name: "Hats", StatusID: domain.StatusCodeFinished, Type: 8, Nms: []int64{300}},
	}
	testCatalog = []domain.Product{
		{Article: 100, SubjName: "Обувь"},
		{Article: 200, SubjName: "Обувь"},
		{Article: 300, SubjName: "Шапки"},
	}
)

// TestBoardBeforeRefresh ensures both sources start out loading.
func TestBoardBeforeRefresh(t *testing.T) {
	source := mocks.NewMockCampaignSource(t)
	svc := NewDashboardUseCase(source, discardLogger())

	b := svc.Board(context.Background(), domain.DefaultSelection())

	assert.Equal(t, domain.StateLoading, b.State)
	assert.Equal(t, domain.StateLoading, b.CatalogState)

	_, err := svc.Campaign(context.Background(), 1)
	assert.ErrorIs(t, err, port.ErrNotReady)
}

func TestRefreshAndGroup(t *testing.T) {
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil).Once()

	svc := NewDashboardUseCase(source, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	b := svc.Board(context.Background(), domain.Selection{GroupBy: domain.GroupSubject, Search: "shoes"})
	require.Equal(t, domain.StateReady, b.State)
	require.Len(t, b.Groups, 1)
	assert.Equal(t, "Обувь", b.Groups[0].Key)
	assert.Equal(t, 2, b.Groups[0].SubjsCount)
	assert.Equal(t, int64(150), b.Total.Views)

	c, err := svc.Campaign(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Hats", c.Name)

	_, err = svc.Campaign(context.Background(), 99)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

// TestRefreshPartialFailure ensures a failing catalog does not affect the
// campaign snapshot.
func TestRefreshPartialFailure(t *testing.T) {
	boom := errors.New("503 from catalog")
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(nil, boom).Once()

	svc := NewDashboardUseCase(source, discardLogger())
	err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, boom)

	flat := svc.Board(context.Background(), domain.DefaultSelection())
	assert.Equal(t, domain.StateReady, flat.State)
	assert.Len(t, flat.Rows, 3)

	grouped := svc.Board(context.Background(), domain.Selection{GroupBy: domain.GroupArticle})
	assert.Equal(t, domain.StateFailed, grouped.State)
	assert.ErrorIs(t, grouped.Err, boom)
	assert.Contains(t, grouped.Error, "list products")
}

func TestOverview(t *testing.T) {
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil).Once()

	svc := NewDashboardUseCase(source, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	o, err := svc.Overview(context.Background(), domain.Selection{Status: domain.FilterActive})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCounts{All: 3, Archived: 1, Paused: 1, Active: 1}, o.Counts)
	assert.Equal(t, 1, o.Shown)
	assert.Equal(t, int64(100), o.Total.Views)
}

// TestRunStopsOnCancel ensures the refresher keeps reloading until its
// context is cancelled and leaves no goroutines behind.
func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var loads atomic.Int32
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Campaign, error) {
		loads.Add(1)
		return testCampaigns, nil
	})
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil)

	svc := NewDashboardUseCase(source, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Run(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return loads.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// TestRunOnce ensures a zero interval loads once and returns.
func TestRunOnce(t *testing.T) {
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil).Once()

	svc := NewDashboardUseCase(source, discardLogger())
	svc.Run(context.Background(), 0)

	assert.Equal(t, domain.StateReady, svc.Board(context.Background(), domain.Selection{GroupBy: domain.GroupArticle}).State)
}

// TestOverlappingRefreshKeepsNewest ensures a slow read that started first
// cannot replace the result of a later read that finished before it.
func TestOverlappingRefreshKeepsNewest(t *testing.T) {
	older := []domain.Campaign{{ID: 1, Name: "older", StatusID: domain.StatusCodeRunning}}
	newer := []domain.Campaign{{ID: 2, Name: "newer", StatusID: domain.StatusCodeRunning}}

	inFlight := make(chan struct{})
	release := make(chan struct{})
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Campaign, error) {
		close(inFlight)
		<-release
		return older, nil
	}).Once()
	source.EXPECT().ListCampaigns(mock.Anything).Return(newer, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil).Times(2)

	svc := NewDashboardUseCase(source, discardLogger())

	first := make(chan error, 1)
	go func() { first <- svc.Refresh(context.Background()) }()
	<-inFlight

	require.NoError(t, svc.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-first)

	b := svc.Board(context.Background(), domain.DefaultSelection())
	require.Len(t, b.Rows, 1)
	assert.Equal(t, int64(2), b.Rows[0].ID)
}

// TestCancelledRefreshKeepsSnapshot ensures a refresh cut short by its
// context leaves the last loaded data in place.
func TestCancelledRefreshKeepsSnapshot(t *testing.T) {
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, nil).Once()
	source.EXPECT().ListCampaigns(mock.Anything).RunAndReturn(func(ctx context.Context) ([]domain.Campaign, error) {
		return nil, ctx.Err()
	}).Once()
	source.EXPECT().ListProducts(mock.Anything).RunAndReturn(func(ctx context.Context) ([]domain.Product, error) {
		return nil, ctx.Err()
	}).Once()

	svc := NewDashboardUseCase(source, discardLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.Refresh(ctx), context.Canceled)

	b := svc.Board(context.Background(), domain.Selection{GroupBy: domain.GroupArticle})
	assert.Equal(t, domain.StateReady, b.State)
	assert.Equal(t, domain.StateReady, b.CatalogState)
	assert.Equal(t, 3, b.Counts.All)
}
