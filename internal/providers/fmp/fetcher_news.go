package fmp

import (
	"context"
	"fmt"

	"github.com/sanjaynv/stocklens/internal/analysis/sentiment"
	"github.com/sanjaynv/stocklens/pkg/models"
)

// News fetches up to limit recent news articles for a symbol. Provider news
// carries no sentiment tag, so each title runs through the keyword
// classifier here; mock news keeps its template-authored tags instead.
func (c *Client) News(ctx context.Context, symbol string, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("fmp:news:%s:%d", symbol, limit)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/stock_news?tickers=%s&limit=%d", symbol, limit)
	var raw []fmpNewsArticle
	if err := c.fetchJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("fmp news %s: %w", symbol, err)
	}

	if len(raw) > limit {
		raw = raw[:limit]
	}
	articles := make([]models.NewsArticle, 0, len(raw))
	for _, item := range raw {
		source := item.Site
		if source == "" {
			source = "Financial News"
		}
		articles = append(articles, models.NewsArticle{
			Title:         item.Title,
			Source:        source,
			Sentiment:     sentiment.Classify(item.Title),
			URL:           item.URL,
			PublishedDate: isoDate(item.PublishedDate),
		})
	}

	c.cache.Set(cacheKey, articles)
	return articles, nil
}

// isoDate truncates an FMP "2006-01-02 15:04:05" timestamp to the date part.
func isoDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
