// Package analyzer orchestrates a full stock analysis: live provider data
// when a credential is configured, synthetic data otherwise, with a
// per-request fallback whenever a live fetch fails.
package analyzer

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sanjaynv/stocklens/internal/analysis/sentiment"
	"github.com/sanjaynv/stocklens/internal/mockgen"
	"github.com/sanjaynv/stocklens/internal/providers/fmp"
	"github.com/sanjaynv/stocklens/internal/providers/rss"
	"github.com/sanjaynv/stocklens/pkg/models"
	"github.com/sanjaynv/stocklens/pkg/utils"
)

const (
	defaultNewsLimit = 5
	historyDays      = 30

	mockSourceName = "Mock Data (MVP Demo)"
)

// Analyzer combines the live provider, the optional RSS source, and the
// mock generators behind a single analysis entry point.
type Analyzer struct {
	fmp       *fmp.Client
	rss       *rss.Source
	news      *mockgen.NewsGenerator
	quotes    *mockgen.QuoteGenerator
	series    *mockgen.SeriesGenerator
	newsLimit int
}

// New creates an analyzer. rssSource may be nil when no feeds are configured;
// newsLimit <= 0 uses the default of 5 articles.
func New(fmpClient *fmp.Client, rssSource *rss.Source, newsLimit int) *Analyzer {
	if newsLimit <= 0 {
		newsLimit = defaultNewsLimit
	}
	return &Analyzer{
		fmp:       fmpClient,
		rss:       rssSource,
		news:      mockgen.NewNewsGenerator(nil),
		quotes:    mockgen.NewQuoteGenerator(nil),
		series:    mockgen.NewSeriesGenerator(nil),
		newsLimit: newsLimit,
	}
}

// Analyze produces a complete analysis result for a symbol. The result is
// always non-nil on success; failures of the live path degrade to mock data
// rather than surfacing as errors.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (*models.AnalysisResult, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	if !a.fmp.Configured() {
		return a.mockResult(symbol), nil
	}

	profile, articles, err := a.fetchLive(ctx, symbol)
	if err != nil {
		log.Printf("analyze %s: live fetch failed, falling back to mock data: %v", symbol, err)
		return a.mockResult(symbol), nil
	}
	return buildResult(*profile, articles, a.fmp.Name()), nil
}

// fetchLive fetches profile and news concurrently. A profile failure fails
// the whole live path; a news failure only degrades news to the mock pool,
// which is why the news error is captured outside the group.
func (a *Analyzer) fetchLive(ctx context.Context, symbol string) (*models.CompanyProfile, []models.NewsArticle, error) {
	var (
		profile  *models.CompanyProfile
		articles []models.NewsArticle
		newsErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := a.fmp.Profile(gctx, symbol)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		articles, newsErr = a.fmp.News(gctx, symbol, a.newsLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if newsErr != nil || len(articles) == 0 {
		if newsErr != nil {
			log.Printf("analyze %s: news fetch failed, using fallback news: %v", symbol, newsErr)
		}
		articles = a.fallbackNews(ctx, symbol)
	}
	return profile, articles, nil
}

// fallbackNews tries configured RSS feeds before the canned headline pool.
func (a *Analyzer) fallbackNews(ctx context.Context, symbol string) []models.NewsArticle {
	if a.rss != nil && a.rss.Configured() {
		if articles, err := a.rss.StockNews(ctx, symbol, a.newsLimit); err == nil && len(articles) > 0 {
			return articles
		}
	}
	return a.news.Generate(symbol)
}

func (a *Analyzer) mockResult(symbol string) *models.AnalysisResult {
	profile := a.quotes.Generate(symbol)
	articles := a.news.Generate(symbol)
	return buildResult(profile, articles, mockSourceName)
}

// Chart returns the price series for the dashboard chart: live history when
// the provider is configured and responds, a synthetic walk otherwise.
func (a *Analyzer) Chart(ctx context.Context, symbol string) (models.PriceSeries, error) {
	symbol = utils.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	if a.fmp.Configured() {
		series, err := a.fmp.History(ctx, symbol, historyDays)
		if err == nil {
			return series, nil
		}
		log.Printf("chart %s: history fetch failed, falling back to mock series: %v", symbol, err)
	}
	return a.series.Generate(symbol), nil
}

// Tick advances a streamed price by one synthetic step.
func (a *Analyzer) Tick(price float64) float64 {
	return a.series.Step(price)
}

func buildResult(profile models.CompanyProfile, articles []models.NewsArticle, source string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Symbol:         profile.Symbol,
		Name:           profile.Name,
		Price:          utils.FormatPrice(profile.Price),
		MarketCap:      profile.MarketCap,
		Sector:         profile.Sector,
		Industry:       profile.Industry,
		Description:    profile.Description,
		Website:        profile.Website,
		SentimentScore: sentiment.Aggregate(articles),
		News:           articles,
		Summary:        sentiment.ComposeSummary(profile, articles),
		Timestamp:      time.Now().Format(time.RFC3339),
		DataSource:     source,
	}
}
