package sentiment

import (
	"strings"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

var positiveKeywords = []string{
	"great", "excellent", "good", "best", "love", "amazing", "perfect", "fantastic",
	"awesome", "wonderful", "happy", "satisfied", "impressive", "exceptional",
}

var negativeKeywords = []string{
	"bad", "terrible", "worst", "hate", "poor", "disappointing", "disappointed",
	"awful", "horrible", "useless", "waste", "slow", "problem", "issue", "fail",
	"breaks", "broken", "crash", "error", "overheats", "freezes",
}

// FallbackClassify is the deterministic keyword heuristic used whenever no
// reliable classifier output is available. It never fails and never returns
// a neutral label or a zero score.
func FallbackClassify(text string) models.SentimentResult {
	lower := strings.ToLower(text)

	posMatched := matchedKeywords(lower, positiveKeywords)
	negMatched := matchedKeywords(lower, negativeKeywords)
	posCount := len(posMatched)
	negCount := len(negMatched)

	if posCount > negCount {
		score := 0.5 + 0.1*float64(posCount-negCount)
		if score > 1.0 {
			score = 1.0
		}
		return models.SentimentResult{
			Sentiment:  models.SentimentPositive,
			Score:      score,
			KeyAspects: capOrDefault(posMatched, 3, "general experience"),
			Issues:     []string{},
			Praise:     capOrDefault(posMatched, 2, "overall satisfaction"),
		}
	}

	score := -0.5 - 0.1*float64(negCount-posCount)
	if score < -1.0 {
		score = -1.0
	}
	return models.SentimentResult{
		Sentiment:  models.SentimentNegative,
		Score:      score,
		KeyAspects: capOrDefault(negMatched, 3, "general experience"),
		Issues:     capOrDefault(negMatched, 2, "customer dissatisfaction"),
		Praise:     []string{},
	}
}

// matchedKeywords returns the keywords present in text, in word-list order.
func matchedKeywords(text string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func capOrDefault(words []string, limit int, def string) []string {
	if len(words) == 0 {
		return []string{def}
	}
	if len(words) > limit {
		words = words[:limit]
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}
