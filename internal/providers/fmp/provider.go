// Package fmp implements the Financial Modeling Prep (FMP) data provider.
// FMP offers company profiles, stock news, and historical prices via a REST
// API with API key authentication.
//
// Free tier: 250 requests/day.
// Docs: https://financialmodelingprep.com/developer/docs
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sanjaynv/stocklens/internal/infra"
)

const (
	// DefaultBaseURL is the production FMP API root.
	DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

	// placeholderKey is the documented demo key. It is treated the same as
	// no key at all: the caller must stay on the mock path.
	placeholderKey = "demo"
)

// Client is a minimal FMP REST client covering the endpoints the analyzer
// needs: company profile, stock news, and 30-day price history.
type Client struct {
	apiKey  string
	baseURL string
	cache   *infra.Cache
	limiter *infra.RateLimiter
}

// New creates an FMP client. The key may be empty; callers must check
// Configured before fetching.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		cache:   infra.NewCache(5 * time.Minute),
		limiter: infra.NewRateLimiter(5, time.Second),
	}
}

// SetBaseURL overrides the API root, used by tests to point at a stub server.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimSuffix(url, "/")
}

// SetCacheTTL replaces the response cache with one using the given TTL.
// Existing entries are discarded.
func (c *Client) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		c.cache = infra.NewCache(ttl)
	}
}

// Configured reports whether a usable credential is present. An empty or
// placeholder key unconditionally forces the mock path.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != placeholderKey
}

// Name is the provenance tag for results fetched through this client.
func (c *Client) Name() string { return "Financial Modeling Prep" }

// ErrSymbolNotFound is returned when FMP has no profile for a symbol.
type ErrSymbolNotFound struct {
	Symbol string
}

func (e *ErrSymbolNotFound) Error() string {
	return fmt.Sprintf("no data found for symbol %q", e.Symbol)
}

// fetchJSON performs a GET against the FMP API and decodes the response.
func (c *Client) fetchJSON(ctx context.Context, path string, dest any) error {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	url := c.baseURL + path + sep + "apikey=" + c.apiKey

	body, _, err := infra.DoGet(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse FMP JSON: %w", err)
	}
	return nil
}
