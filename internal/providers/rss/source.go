// Package rss implements an optional news source backed by financial RSS
// feeds. It supplements provider news when feeds are configured; with no
// feeds it stays disabled and the analyzer never consults it.
package rss

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/sanjaynv/stocklens/internal/analysis/sentiment"
	"github.com/sanjaynv/stocklens/internal/infra"
	"github.com/sanjaynv/stocklens/pkg/models"
)

// Feed is a single RSS feed configuration.
type Feed struct {
	Name string
	URL  string
}

// Source fetches and classifies news articles from configured RSS feeds.
type Source struct {
	feeds   []Feed
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// New creates an RSS news source. An empty feed list yields a disabled source.
func New(feeds []Feed) *Source {
	return &Source{
		feeds:   feeds,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second), // conservative: 2 req/s
		parser:  gofeed.NewParser(),
	}
}

// Configured reports whether any feeds are set up.
func (s *Source) Configured() bool { return len(s.feeds) > 0 }

// Name returns the provenance tag for articles from this source.
func (s *Source) Name() string { return "RSS Feeds" }

// StockNews returns articles from all feeds that mention the symbol or its
// company name, newest first, classified by headline keywords.
func (s *Source) StockNews(ctx context.Context, symbol string, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("rss:stock:%s:%d", symbol, limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	all, err := s.marketNews(ctx)
	if err != nil {
		return nil, err
	}

	keywords := symbolKeywords(symbol)
	var filtered []models.NewsArticle
	for _, a := range all {
		if matchesAny(a.Title, keywords) {
			filtered = append(filtered, a)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	s.cache.Set(cacheKey, filtered)
	return filtered, nil
}

// marketNews fetches every configured feed, skipping ones that fail.
func (s *Source) marketNews(ctx context.Context) ([]models.NewsArticle, error) {
	cacheKey := "rss:market"
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	var all []models.NewsArticle
	for _, feed := range s.feeds {
		articles, err := s.fetchFeed(ctx, feed)
		if err != nil {
			// Non-critical: skip failed feeds.
			continue
		}
		all = append(all, articles...)
	}
	sortByDate(all)

	s.cache.Set(cacheKey, all)
	return all, nil
}

func (s *Source) fetchFeed(ctx context.Context, feed Feed) ([]models.NewsArticle, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	parsed, err := s.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse RSS %s: %w", feed.Name, err)
	}

	articles := make([]models.NewsArticle, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := cleanHTML(item.Title)
		a := models.NewsArticle{
			Title:     title,
			Source:    feed.Name,
			Sentiment: sentiment.Classify(title),
			URL:       item.Link,
		}
		if item.PublishedParsed != nil {
			a.PublishedDate = item.PublishedParsed.Format("2006-01-02")
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// symbolKeywords returns search keywords for a ticker.
// For example, "AAPL" → ["aapl", "apple"].
func symbolKeywords(symbol string) []string {
	t := strings.ToLower(symbol)
	keywords := []string{t}

	nameMap := map[string][]string{
		"aapl":  {"apple"},
		"tsla":  {"tesla", "elon musk"},
		"googl": {"google", "alphabet"},
		"goog":  {"google", "alphabet"},
		"msft":  {"microsoft"},
		"nvda":  {"nvidia"},
		"amzn":  {"amazon"},
		"meta":  {"meta platforms", "facebook"},
		"nflx":  {"netflix"},
		"amd":   {"advanced micro devices"},
	}
	if extra, ok := nameMap[t]; ok {
		keywords = append(keywords, extra...)
	}
	return keywords
}

// matchesAny checks if text contains any of the keywords (case-insensitive).
func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// sortByDate sorts articles newest first by their ISO date string.
// Insertion sort is fine for feed-sized slices.
func sortByDate(articles []models.NewsArticle) {
	for i := 1; i < len(articles); i++ {
		key := articles[i]
		j := i - 1
		for j >= 0 && articles[j].PublishedDate < key.PublishedDate {
			articles[j+1] = articles[j]
			j--
		}
		articles[j+1] = key
	}
}
