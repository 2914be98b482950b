// Package sentiment classifies cleaned comment text into a two-label
// sentiment result via one of several interchangeable strategies, with a
// deterministic keyword heuristic backing every failure path.
package sentiment

import (
	"context"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

// Strategy is one way of producing a sentiment result for a piece of text.
// A returned error means the strategy could not produce a trustworthy
// result; the caller is expected to fall back to the keyword heuristic, so
// errors from this interface never reach the HTTP boundary.
type Strategy interface {
	Classify(ctx context.Context, text string) (models.SentimentResult, error)
	Name() string
	// Paced reports whether successive calls must be spaced out to respect
	// upstream rate limits. Only remote strategies are paced.
	Paced() bool
}
