package mockgen

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// knownProfiles is the fixed lookup table of well-known tickers with
// hand-authored profile data. Read-only, shared across requests.
var knownProfiles = map[string]models.CompanyProfile{
	"AAPL": {
		Name: "Apple Inc.", Price: 175.25, MarketCap: 2_800_000_000_000,
		Sector: "Technology", Industry: "Consumer Electronics",
		Description: "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide.",
	},
	"TSLA": {
		Name: "Tesla Inc.", Price: 248.50, MarketCap: 780_000_000_000,
		Sector: "Consumer Discretionary", Industry: "Auto Manufacturers",
		Description: "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, and energy generation and storage systems.",
	},
	"GOOGL": {
		Name: "Alphabet Inc.", Price: 138.75, MarketCap: 1_700_000_000_000,
		Sector: "Technology", Industry: "Internet Content & Information",
		Description: "Alphabet Inc. provides online advertising services in the United States, Europe, the Middle East, Africa, the Asia-Pacific, Canada, and Latin America.",
	},
	"MSFT": {
		Name: "Microsoft Corporation", Price: 415.20, MarketCap: 3_100_000_000_000,
		Sector: "Technology", Industry: "Software Infrastructure",
		Description: "Microsoft Corporation develops, licenses, and supports software, services, devices, and solutions worldwide.",
	},
	"NVDA": {
		Name: "NVIDIA Corporation", Price: 465.85, MarketCap: 1_150_000_000_000,
		Sector: "Technology", Industry: "Semiconductors",
		Description: "NVIDIA Corporation operates as a computing company in the United States, Taiwan, China, Hong Kong, and internationally.",
	},
	"AMZN": {
		Name: "Amazon.com Inc.", Price: 155.30, MarketCap: 1_600_000_000_000,
		Sector: "Consumer Discretionary", Industry: "Internet Retail",
		Description: "Amazon.com, Inc. engages in the retail sale of consumer products and subscriptions through online and physical stores worldwide.",
	},
}

// QuoteGenerator synthesizes company profiles for the mock path.
type QuoteGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuoteGenerator creates a quote generator. A nil rng is time-seeded.
func NewQuoteGenerator(rng *rand.Rand) *QuoteGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteGenerator{rng: rng}
}

// Generate returns the hand-authored profile for a known symbol, or a
// synthesized placeholder profile for anything else: price in [50, 250),
// market cap in [5e10, 1.05e12), sector and industry "Unknown".
func (g *QuoteGenerator) Generate(symbol string) models.CompanyProfile {
	if p, ok := knownProfiles[symbol]; ok {
		p.Symbol = symbol
		return p
	}

	g.mu.Lock()
	price := 50 + g.rng.Float64()*200
	marketCap := 50_000_000_000 + g.rng.Float64()*1_000_000_000_000
	g.mu.Unlock()

	return models.CompanyProfile{
		Symbol:      symbol,
		Name:        symbol + " Corporation",
		Price:       price,
		MarketCap:   math.Round(marketCap),
		Sector:      "Unknown",
		Industry:    "Unknown",
		Description: fmt.Sprintf("%s is a publicly traded company. This is mock data for demonstration purposes.", symbol),
	}
}
