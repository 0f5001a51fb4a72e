package mockgen

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/sanjaynv/stocklens/pkg/models"
)

const (
	seriesDays      = 30
	dailyVolatility = 0.02
	priceFloor      = 10
	minVolume       = 5_000_000
	volumeSpread    = 50_000_000
)

// SeriesGenerator produces a 31-point daily random-walk price series.
type SeriesGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeriesGenerator creates a series generator. A nil rng is time-seeded.
func NewSeriesGenerator(rng *rand.Rand) *SeriesGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SeriesGenerator{rng: rng}
}

// Generate walks a base price from 30 days ago through today with ±2% daily
// moves, clamped at the floor of 10 after every step. High and low are fixed
// ±2% offsets of the day's close, not an intraday range; the dashboard chart
// only needs a plausible envelope.
func (g *SeriesGenerator) Generate(symbol string) models.PriceSeries {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := 50 + g.rng.Float64()*200
	today := time.Now()

	series := make(models.PriceSeries, 0, seriesDays+1)
	for offset := seriesDays; offset >= 0; offset-- {
		change := (g.rng.Float64() - 0.5) * 2 * dailyVolatility
		base = math.Max(base*(1+change), priceFloor)

		price := round2(base)
		series = append(series, models.PricePoint{
			Date:   today.AddDate(0, 0, -offset).Format("2006-01-02"),
			Price:  price,
			Volume: minVolume + g.rng.Int63n(volumeSpread),
			High:   round2(price * 1.02),
			Low:    round2(price * 0.98),
		})
	}
	return series
}

// Step advances a price by one random-walk increment with the same
// volatility and floor as Generate. Used by the live tick stream.
func (g *SeriesGenerator) Step(price float64) float64 {
	g.mu.Lock()
	change := (g.rng.Float64() - 0.5) * 2 * dailyVolatility
	g.mu.Unlock()
	return round2(math.Max(price*(1+change), priceFloor))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
