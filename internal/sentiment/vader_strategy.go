package sentiment

import (
	"context"

	"github.com/jonreiter/govader"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

// VaderStrategy scores comments with the VADER lexicon. Cheap, offline, and
// deterministic; like the transformer strategy it extracts no aspects.
type VaderStrategy struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderStrategy() *VaderStrategy {
	return &VaderStrategy{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VaderStrategy) Name() string { return "vader" }

func (s *VaderStrategy) Paced() bool { return false }

func (s *VaderStrategy) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	compound := s.analyzer.PolarityScores(text).Compound

	sentiment := models.SentimentNegative
	if compound >= 0 {
		sentiment = models.SentimentPositive
	}

	score := compound
	if sentiment == models.SentimentPositive && score <= 0 {
		score = defaultPositiveScore
	}
	if sentiment == models.SentimentNegative && score >= 0 {
		score = defaultNegativeScore
	}

	return models.SentimentResult{
		Sentiment:  sentiment,
		Score:      score,
		KeyAspects: []string{},
		Issues:     []string{},
		Praise:     []string{},
	}, nil
}
