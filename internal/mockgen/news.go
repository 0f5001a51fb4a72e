// Package mockgen produces synthetic analysis data: canned news headlines,
// company profiles, and random-walk price series. It backs the fallback path
// when no live provider credential is configured or a live fetch fails.
//
// All generators take an injected *rand.Rand so tests can pin the source;
// passing nil uses a time-seeded one. Outputs are shape-constrained, never
// value-exact.
package mockgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sanjaynv/stocklens/pkg/models"
)

type newsTemplate struct {
	title     string // contains one %s for the symbol
	source    string
	sentiment models.Sentiment
}

// newsTemplates is the fixed headline pool. Sentiment is authored per
// template and passed through as-is. Mock news bypasses the keyword
// classifier; only externally fetched news is classified.
var newsTemplates = []newsTemplate{
	{"%s reports strong quarterly earnings, beats analyst expectations", "Financial Times", models.SentimentPositive},
	{"Analysts upgrade %s price target following strong performance", "MarketWatch", models.SentimentPositive},
	{"%s announces strategic partnership to expand market reach", "Reuters", models.SentimentPositive},
	{"Market volatility creates uncertainty for %s investors", "Bloomberg", models.SentimentNeutral},
	{"%s stock shows resilience despite broader market concerns", "Yahoo Finance", models.SentimentPositive},
	{"Institutional investors increase holdings in %s", "Seeking Alpha", models.SentimentPositive},
}

// NewsGenerator produces a random subset of the headline templates.
type NewsGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewNewsGenerator creates a news generator. A nil rng is time-seeded.
func NewNewsGenerator(rng *rand.Rand) *NewsGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &NewsGenerator{rng: rng}
}

// Generate returns 3 to 5 articles for the symbol, each with the symbol
// substituted into the title and a published date within the last 7 days.
func (g *NewsGenerator) Generate(symbol string) []models.NewsArticle {
	g.mu.Lock()
	defer g.mu.Unlock()

	order := g.rng.Perm(len(newsTemplates))
	count := 3 + g.rng.Intn(3)

	now := time.Now()
	articles := make([]models.NewsArticle, 0, count)
	for _, i := range order[:count] {
		tpl := newsTemplates[i]
		age := time.Duration(g.rng.Float64() * 7 * 24 * float64(time.Hour))
		articles = append(articles, models.NewsArticle{
			Title:         fmt.Sprintf(tpl.title, symbol),
			Source:        tpl.source,
			Sentiment:     tpl.sentiment,
			URL:           "https://example.com/news/" + strings.ToLower(symbol),
			PublishedDate: now.Add(-age).Format("2006-01-02"),
		})
	}
	return articles
}
