package sentiment

import (
	"fmt"
	"math"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// Aggregate reduces a sequence of tagged articles into a banded overall
// sentiment label. Percentages use math.Round, i.e. half away from zero.
//
// The bands are evaluated in order and the first match wins; positive bands
// are checked before negative ones, so a 50/50 positive/negative split lands
// in "Positive (50%)". That asymmetry is intentional; do not reorder.
func Aggregate(articles []models.NewsArticle) string {
	if len(articles) == 0 {
		return "Neutral (No data)"
	}

	var positive, negative int
	for _, a := range articles {
		switch a.Sentiment {
		case models.SentimentPositive:
			positive++
		case models.SentimentNegative:
			negative++
		}
	}

	total := float64(len(articles))
	positivePct := int(math.Round(100 * float64(positive) / total))
	negativePct := int(math.Round(100 * float64(negative) / total))

	switch {
	case positivePct >= 60:
		return fmt.Sprintf("Very Positive (%d%%)", positivePct)
	case positivePct >= 40:
		return fmt.Sprintf("Positive (%d%%)", positivePct)
	case negativePct >= 60:
		return fmt.Sprintf("Very Negative (%d%%)", negativePct)
	case negativePct >= 40:
		return fmt.Sprintf("Negative (%d%%)", negativePct)
	default:
		return fmt.Sprintf("Mixed (%d%% pos, %d%% neg)", positivePct, negativePct)
	}
}
