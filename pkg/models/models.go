// Package models defines the core data structures used throughout StockLens.
package models

// Sentiment is the classification of a single news article.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// CompanyProfile holds basic company information for a ticker. A profile is
// either fetched from the live provider or synthesized by the mock generator;
// once produced it is never mutated.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MarketCap   float64 `json:"marketCap"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	Website     string  `json:"website,omitempty"`
}

// NewsArticle is a single headline with its sentiment tag.
// PublishedDate is an ISO date (YYYY-MM-DD), no time component.
type NewsArticle struct {
	Title         string    `json:"title"`
	Source        string    `json:"source"`
	Sentiment     Sentiment `json:"sentiment"`
	URL           string    `json:"url,omitempty"`
	PublishedDate string    `json:"publishedDate"`
}

// PricePoint is one day in a 30-day price series. High and low from the mock
// generator are fixed offsets of the close, not a true intraday range.
type PricePoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
}

// PriceSeries is a date-ascending sequence of daily price points.
type PriceSeries []PricePoint

// AnalysisResult is the full analysis response for one symbol. It is built
// once per request and returned as-is; Price is pre-formatted to two decimals
// because the dashboard renders it verbatim.
type AnalysisResult struct {
	Symbol         string        `json:"symbol"`
	Name           string        `json:"name"`
	Price          string        `json:"price"`
	MarketCap      float64       `json:"marketCap"`
	Sector         string        `json:"sector"`
	Industry       string        `json:"industry"`
	Description    string        `json:"description"`
	Website        string        `json:"website,omitempty"`
	SentimentScore string        `json:"sentimentScore"`
	News           []NewsArticle `json:"news"`
	Summary        string        `json:"summary"`
	Timestamp      string        `json:"timestamp"`
	DataSource     string        `json:"dataSource"`
}
