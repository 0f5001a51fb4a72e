package fmp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// History fetches the last `days` daily bars for a symbol as a date-ascending
// price series. Unlike the mock series, high and low here are the real
// intraday range reported by the provider.
func (c *Client) History(ctx context.Context, symbol string, days int) (models.PriceSeries, error) {
	cacheKey := fmt.Sprintf("fmp:history:%s:%d", symbol, days)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(models.PriceSeries), nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	path := fmt.Sprintf("/historical-price-full/%s?from=%s&to=%s",
		symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))

	var raw fmpHistoricalPrice
	if err := c.fetchJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("fmp history %s: %w", symbol, err)
	}
	if len(raw.Historical) == 0 {
		return nil, &ErrSymbolNotFound{Symbol: symbol}
	}

	// FMP returns newest first; the chart wants oldest first.
	series := make(models.PriceSeries, 0, len(raw.Historical))
	for i := len(raw.Historical) - 1; i >= 0; i-- {
		h := raw.Historical[i]
		series = append(series, models.PricePoint{
			Date:   h.Date,
			Price:  math.Round(h.Close*100) / 100,
			Volume: h.Volume,
			High:   h.High,
			Low:    h.Low,
		})
	}

	c.cache.Set(cacheKey, series)
	return series, nil
}
