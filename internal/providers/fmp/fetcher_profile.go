package fmp

import (
	"context"
	"fmt"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// Profile fetches the company profile for a symbol. A response with zero
// results maps to ErrSymbolNotFound so the caller can fall back to mocks.
func (c *Client) Profile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	cacheKey := "fmp:profile:" + symbol
	if cached, ok := c.cache.Get(cacheKey); ok {
		p := cached.(models.CompanyProfile)
		return &p, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var results []fmpProfile
	if err := c.fetchJSON(ctx, "/profile/"+symbol, &results); err != nil {
		return nil, fmt.Errorf("fmp profile %s: %w", symbol, err)
	}
	if len(results) == 0 {
		return nil, &ErrSymbolNotFound{Symbol: symbol}
	}

	raw := results[0]
	profile := models.CompanyProfile{
		Symbol:      symbol,
		Name:        raw.CompanyName,
		Price:       raw.Price,
		MarketCap:   raw.MktCap,
		Sector:      raw.Sector,
		Industry:    raw.Industry,
		Description: raw.Description,
		Website:     raw.Website,
	}

	c.cache.Set(cacheKey, profile)
	return &profile, nil
}
