package apiclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-campaigns/internal/config/configs"
)

const campaignsJSON = `[
  {"Id": 7, "CampaignName": "Весна", "statusId": 9, "Type": 8, "nms": [100, 200],
   "Views": 1000, "Clicks": 25, "Ctr": 2.5, "spent": 310.4, "orders": 3,
   "budget": {"budget": 5000, "dailyBudget": 500}},
  {"Id": 8, "CampaignName": "Draft", "statusId": 4, "Type": 6, "nms": []}
]`

const productsJSON = `[{"article": 100, "subjName": "Обувь"}, {"article": 200, "subjName": "Шапки"}]`

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL + "/api")
	require.NoError(t, err)

	return NewClient(configs.Source{
		APIURL:        *base,
		CampaignsPath: "/campaigns/list",
		ProductsPath:  "/articles/subjname",
		Timeout:       time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListCampaigns(t *testing.T) {
	var requestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/list", r.URL.Path)
		requestID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, campaignsJSON)
	}))

	campaigns, err := c.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.NotEmpty(t, requestID)

	first := campaigns[0]
	assert.Equal(t, int64(7), first.ID)
	assert.Equal(t, "Весна", first.Name)
	assert.Equal(t, 9, first.StatusID)
	assert.Equal(t, []int64{100, 200}, first.Nms)
	require.NotNil(t, first.Views)
	assert.Equal(t, int64(1000), *first.Views)
	require.NotNil(t, first.Spent)
	assert.InDelta(t, 310.4, *first.Spent, 1e-9)
	require.NotNil(t, first.Budget)
	assert.InDelta(t, 500, first.Budget.DailyBudget, 1e-9)

	second := campaigns[1]
	assert.Nil(t, second.Views)
	assert.Nil(t, second.Budget)
	assert.Empty(t, second.Nms)
}

func TestListProducts(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles/subjname", r.URL.Path)
		_, _ = io.WriteString(w, productsJSON)
	}))

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(200), products[1].Article)
	assert.Equal(t, "Шапки", products[1].SubjName)
}

func TestNonSuccessStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))

	_, err := c.ListProducts(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "token expired", statusErr.Body)
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not": "a list"}`)
	}))

	_, err := c.ListCampaigns(context.Background())
	assert.ErrorContains(t, err, "decode")
}
