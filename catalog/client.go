package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/spektr-org/hrdiagram/engine"
)

// ============================================================================
// VIZIER CLIENT — One ASU-TSV request per run
// ============================================================================

// Client implements Fetcher against the VizieR ASU service.
type Client struct {
	config Config
	client *http.Client
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a VizieR client.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = "hrdiagram"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{config: cfg, client: httpClient}
}

// Fetch runs the query and returns the matching stars. Any failure,
// including an empty result, matches ErrDataUnavailable.
func (c *Client) Fetch(ctx context.Context, q Query) ([]engine.Star, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	url := c.config.Endpoint + asuTSVPath + "?" + q.Values().Encode()

	logger := log.WithFields(log.Fields{
		"source":  q.Source,
		"columns": strings.Join(q.Columns, ","),
	})
	logger.Info("🔭 querying VizieR")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataUnavailable, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/tab-separated-values, text/plain")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: HTTP request failed: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: VizieR returned %d: %s", ErrDataUnavailable, resp.StatusCode, truncate(string(body), 200))
	}

	stars, stats, err := ParseTSV(resp.Body, q.Schema)
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"rows":     stats.Rows,
		"skipped":  stats.Skipped,
		"stars":    len(stars),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("✅ catalog rows received")

	return stars, nil
}

// FetchColumns is Fetch returning index-aligned columns.
func (c *Client) FetchColumns(ctx context.Context, q Query) (engine.Columns, error) {
	stars, err := c.Fetch(ctx, q)
	if err != nil {
		return engine.Columns{}, err
	}
	return engine.ColumnsFromStars(stars, q.WantsSpectralTypes()), nil
}

func truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
