package sentiment

import (
	"fmt"
	"strings"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// ComposeSummary renders the analysis paragraph for a profile and its news.
// Missing name/sector degrade to "Unknown" and a missing symbol to "N/A";
// the industry clause is omitted entirely when the field is empty.
func ComposeSummary(profile models.CompanyProfile, articles []models.NewsArticle) string {
	overall := Aggregate(articles)

	word := "mixed"
	switch {
	case strings.Contains(overall, "Positive"):
		word = "positive"
	case strings.Contains(overall, "Negative"):
		word = "negative"
	}

	name := profile.Name
	if name == "" {
		name = "Unknown"
	}
	symbol := profile.Symbol
	if symbol == "" {
		symbol = "N/A"
	}
	sector := profile.Sector
	if sector == "" {
		sector = "Unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) is showing %s market sentiment based on recent news analysis. ", name, symbol, word)
	fmt.Fprintf(&b, "The company operates in the %s sector", sector)
	if profile.Industry != "" {
		fmt.Fprintf(&b, " focusing on %s", strings.ToLower(profile.Industry))
	}
	fmt.Fprintf(&b, ". Current analysis suggests %s investor outlook. ", strings.ToLower(overall))
	fmt.Fprintf(&b, "This assessment is based on %d recent news articles and market data.", len(articles))

	return b.String()
}
