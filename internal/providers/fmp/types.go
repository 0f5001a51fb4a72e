package fmp

// --- FMP API response types ---

// fmpProfile represents a company profile from FMP.
type fmpProfile struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	MktCap      float64 `json:"mktCap"`
	CompanyName string  `json:"companyName"`
	Currency    string  `json:"currency"`
	Exchange    string  `json:"exchange"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
	Sector      string  `json:"sector"`
	Country     string  `json:"country"`
}

// fmpNewsArticle represents a stock news article from FMP.
type fmpNewsArticle struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"` // "2006-01-02 15:04:05"
	Title         string `json:"title"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

// fmpHistoricalPrice represents historical OHLCV data from FMP,
// newest entry first.
type fmpHistoricalPrice struct {
	Symbol     string               `json:"symbol"`
	Historical []fmpHistoricalEntry `json:"historical"`
}

type fmpHistoricalEntry struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
