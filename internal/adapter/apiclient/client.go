package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"mesa-campaigns/internal/config/configs"
	"mesa-campaigns/internal/core/domain"
)

// RequestIDHeader carries a per-request id so that dashboard logs can be
// matched with the campaign API's.
const RequestIDHeader = "X-Request-ID"

// Client implements port.CampaignSource against the remote campaign API.
type Client struct {
	baseURL       url.URL
	campaignsPath string
	productsPath  string
	http          *http.Client
	logger        *slog.Logger
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
}

// NewClient returns a client for the API described by cfg.
func NewClient(cfg configs.Source, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       cfg.APIURL,
		campaignsPath: cfg.CampaignsPath,
		productsPath:  cfg.ProductsPath,
		http:          &http.Client{Timeout: cfg.Timeout},
		logger:        logger,
	}
}

// ListCampaigns returns every campaign of the account.
func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	if err := c.getJSON(ctx, c.campaignsPath, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// ListProducts returns the article to subject catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, c.productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	c.logger.Debug("campaign api call",
		slog.String("url", u.Redacted()),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// keep only the start of the body
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{URL: u.Redacted(), StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", u.Redacted(), err)
	}
	return nil
}
