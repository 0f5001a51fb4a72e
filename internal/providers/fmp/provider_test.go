package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanjaynv/stocklens/pkg/models"
)

func stubServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("apikey") == "" {
			t.Error("request missing apikey query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"demo", false},
		{"real-key-123", true},
	}
	for _, tt := range tests {
		if got := New(tt.key).Configured(); got != tt.want {
			t.Errorf("Configured() with key %q = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestProfile(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/profile/AAPL": `[{"symbol":"AAPL","price":178.25,"mktCap":2800000000000,
			"companyName":"Apple Inc.","sector":"Technology","industry":"Consumer Electronics",
			"description":"Apple designs consumer electronics.","website":"https://www.apple.com"}]`,
	})
	c := New("test-key")
	c.SetBaseURL(srv.URL)

	profile, err := c.Profile(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.Name != "Apple Inc." {
		t.Errorf("Name = %q, want %q", profile.Name, "Apple Inc.")
	}
	if profile.Price != 178.25 {
		t.Errorf("Price = %v, want 178.25", profile.Price)
	}
	if profile.Sector != "Technology" {
		t.Errorf("Sector = %q, want %q", profile.Sector, "Technology")
	}
}

func TestProfileSymbolNotFound(t *testing.T) {
	srv := stubServer(t, map[string]string{"/profile/ZZZZ": `[]`})
	c := New("test-key")
	c.SetBaseURL(srv.URL)

	_, err := c.Profile(context.Background(), "ZZZZ")
	var notFound *ErrSymbolNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want ErrSymbolNotFound", err)
	}
	if notFound.Symbol != "ZZZZ" {
		t.Errorf("Symbol = %q, want %q", notFound.Symbol, "ZZZZ")
	}
}

func TestProfileCaching(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"symbol":"TSLA","price":242.5,"companyName":"Tesla, Inc."}]`))
	}))
	defer srv.Close()
	c := New("test-key")
	c.SetBaseURL(srv.URL)

	for i := 0; i < 3; i++ {
		if _, err := c.Profile(context.Background(), "TSLA"); err != nil {
			t.Fatalf("Profile call %d returned error: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("server received %d calls, want 1 (cached)", calls)
	}
}

func TestNews(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/stock_news": `[
			{"symbol":"AAPL","title":"Apple beats earnings expectations","site":"Reuters",
			 "publishedDate":"2026-08-28 14:30:00","url":"https://example.org/a"},
			{"symbol":"AAPL","title":"Apple stock falls on supply concerns","site":"",
			 "publishedDate":"2026-08-27 09:15:00","url":"https://example.org/b"}
		]`,
	})
	c := New("test-key")
	c.SetBaseURL(srv.URL)

	articles, err := c.News(context.Background(), "AAPL", 5)
	if err != nil {
		t.Fatalf("News returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Sentiment != models.SentimentPositive {
		t.Errorf("article 0 sentiment = %q, want Positive", articles[0].Sentiment)
	}
	if articles[1].Sentiment != models.SentimentNegative {
		t.Errorf("article 1 sentiment = %q, want Negative", articles[1].Sentiment)
	}
	if articles[0].PublishedDate != "2026-08-28" {
		t.Errorf("PublishedDate = %q, want date-only %q", articles[0].PublishedDate, "2026-08-28")
	}
	if articles[1].Source != "Financial News" {
		t.Errorf("empty site should default to %q, got %q", "Financial News", articles[1].Source)
	}
}

func TestHistory(t *testing.T) {
	srv := stubServer(t, map[string]string{
		"/historical-price-full/MSFT": `{"symbol":"MSFT","historical":[
			{"date":"2026-08-28","close":415.339,"high":418.2,"low":412.1,"volume":21000000},
			{"date":"2026-08-27","close":412.5,"high":414.0,"low":410.3,"volume":19500000}
		]}`,
	})
	c := New("test-key")
	c.SetBaseURL(srv.URL)

	series, err := c.History(context.Background(), "MSFT", 30)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d points, want 2", len(series))
	}
	if series[0].Date != "2026-08-27" || series[1].Date != "2026-08-28" {
		t.Errorf("series not ascending: %q then %q", series[0].Date, series[1].Date)
	}
	if series[1].Price != 415.34 {
		t.Errorf("close not rounded to cents: got %v, want 415.34", series[1].Price)
	}
}
