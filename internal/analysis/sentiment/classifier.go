// Package sentiment implements keyword-based sentiment classification for
// news headlines, aggregation of per-article sentiment into an overall
// score, and the prose summary composer.
//
// There is no NLP model here: classification is a substring count over two
// fixed keyword dictionaries, which is deterministic and cheap enough to run
// on every request.
package sentiment

import (
	"strings"

	"github.com/sanjaynv/stocklens/pkg/models"
)

// positive / negative keyword stems (lowercase). Matching is substring-based
// and not word-boundary aware: "upgrades" matches "upgrade", but so would a
// keyword buried inside an unrelated word.
var positiveKeywords = []string{
	"strong", "beats", "exceeds", "grows", "gains", "rises", "bullish",
	"positive", "upgrade", "outperforms", "success", "partnership",
	"expansion", "breakthrough",
}

var negativeKeywords = []string{
	"falls", "drops", "declines", "bearish", "negative", "concerns",
	"volatility", "downgrade", "misses", "disappoints", "struggles",
	"challenges", "uncertainty",
}

// Classify tags a single text as Positive, Negative or Neutral by counting
// keyword hits from each dictionary (each keyword counts at most once).
// Ties, including the empty string, are Neutral.
func Classify(text string) models.Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveKeywords {
		if strings.Contains(lower, word) {
			positive++
		}
	}

	negative := 0
	for _, word := range negativeKeywords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
