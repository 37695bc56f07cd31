package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/config"
	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/port/mocks"
)

var (
	testCampaigns = []domain.Campaign{
		{ID: 1, Name: "Spring shoes", StatusID: domain.StatusCodeRunning, Type: 8, Nms: []int64{100}},
		{ID: 2, Name: "Autumn shoes", StatusID: domain.StatusCodePaused, Type: 6, Nms: []int64{200}},
		{ID: 3, Name: "Hats", StatusID: domain.StatusCodeFinished, Type: 8, Nms: []int64{300}},
	}
	testCatalog = []domain.Product{
		{Article: 100, SubjName: "Обувь"},
		{Article: 200, SubjName: "Обувь"},
		{Article: 300, SubjName: "Шапки"},
	}
)

func runReport(t *testing.T, catalogErr error, args ...string) (string, error) {
	t.Helper()
	source := mocks.NewMockCampaignSource(t)
	source.EXPECT().ListCampaigns(mock.Anything).Return(testCampaigns, nil).Once()
	source.EXPECT().ListProducts(mock.Anything).Return(testCatalog, catalogErr).Once()

	closed := false
	cmd := newRootCmd(func(context.Context, config.Config, *slog.Logger) (port.CampaignSource, func(), error) {
		return source, func() { closed = true }, nil
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"report"}, args...))

	err := cmd.ExecuteContext(context.Background())
	assert.True(t, closed, "source released")
	return out.String(), err
}

func TestReportFlat(t *testing.T) {
	out, err := runReport(t, nil, "--status", "active")
	require.NoError(t, err)

	assert.Contains(t, out, "Все: 3")
	assert.Contains(t, out, "Spring shoes")
	assert.NotContains(t, out, "Autumn shoes")
	assert.Contains(t, out, "Страница 1 из 1, кампаний: 1")
}

func TestReportGroupedExpanded(t *testing.T) {
	out, err := runReport(t, nil, "--group", "subject", "--expand")
	require.NoError(t, err)

	assert.Contains(t, out, "Артикулов")
	assert.Contains(t, out, "Обувь")
	assert.Contains(t, out, "Шапки")
	assert.Contains(t, out, "Hats")
}

func TestReportCatalogFailure(t *testing.T) {
	_, err := runReport(t, errors.New("catalog down"), "-g", "article")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog down")
}

func TestReportInvalidFlags(t *testing.T) {
	cmd := newRootCmd(func(context.Context, config.Config, *slog.Logger) (port.CampaignSource, func(), error) {
		t.Fatal("source must not be opened")
		return nil, nil, nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"report", "--size", "7"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRenderBoardGroupedCollapsed(t *testing.T) {
	b := domain.BuildBoard(domain.Ready(testCampaigns), domain.Ready(testCatalog), domain.Selection{GroupBy: domain.GroupType})

	var buf bytes.Buffer
	require.NoError(t, RenderBoard(&buf, b, false))

	out := buf.String()
	assert.Contains(t, out, "Вид рекламы")
	assert.Contains(t, out, "Автоматическая")
	assert.Contains(t, out, "В поиске")
	assert.NotContains(t, out, "Spring shoes", "campaigns stay collapsed")
}
