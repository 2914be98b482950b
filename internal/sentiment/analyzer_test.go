package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

type fakeStrategy struct {
	name   string
	paced  bool
	err    error
	panics bool
	calls  int
}

func (f *fakeStrategy) Name() string { return f.name }
func (f *fakeStrategy) Paced() bool  { return f.paced }

func (f *fakeStrategy) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	f.calls++
	if f.panics {
		panic("model exploded")
	}
	if f.err != nil {
		return models.SentimentResult{}, f.err
	}
	return models.SentimentResult{Sentiment: models.SentimentPositive, Score: 0.9}, nil
}

func comment(id, cleaned string) models.Comment {
	return models.Comment{ID: id, Text: cleaned, CleanedText: cleaned}
}

func TestAnalyzeBatchOneResultPerComment(t *testing.T) {
	analyzer := NewAnalyzer(&fakeStrategy{name: "fake"}, 0)

	comments := []models.Comment{
		comment("1", "great product"),
		comment("2", "terrible product"),
		comment("3", "works fine"),
	}
	results := analyzer.AnalyzeBatch(context.Background(), comments)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, comments[i].ID, r.CommentID)
		assert.Equal(t, "fake", r.ModelUsed)
	}
}

func TestAnalyzeBatchSkipsEmptyCleanedText(t *testing.T) {
	strategy := &fakeStrategy{name: "fake"}
	analyzer := NewAnalyzer(strategy, 0)

	comments := []models.Comment{
		comment("1", "great product"),
		comment("2", ""),
		comment("3", "   "),
		comment("4", "broke immediately"),
	}
	results := analyzer.AnalyzeBatch(context.Background(), comments)

	require.Len(t, results, 2)
	assert.Equal(t, 2, strategy.calls)
	assert.Equal(t, "1", results[0].CommentID)
	assert.Equal(t, "4", results[1].CommentID)
}

func TestAnalyzeBatchFallsBackOnStrategyError(t *testing.T) {
	strategy := &fakeStrategy{name: "openai", err: errors.New("network down")}
	analyzer := NewAnalyzer(strategy, 0)

	results := analyzer.AnalyzeBatch(context.Background(), []models.Comment{
		comment("1", "terrible waste of money"),
	})

	require.Len(t, results, 1)
	// Keyword fallback result, not a placeholder.
	assert.Equal(t, models.SentimentNegative, results[0].Sentiment)
	assert.Less(t, results[0].Score, 0.0)
	assert.NotEmpty(t, results[0].Issues)
	assert.Equal(t, "openai", results[0].ModelUsed)
}

func TestAnalyzeBatchPanicYieldsNeutralPlaceholder(t *testing.T) {
	strategy := &fakeStrategy{name: "bert", panics: true}
	analyzer := NewAnalyzer(strategy, 0)

	results := analyzer.AnalyzeBatch(context.Background(), []models.Comment{
		comment("1", "anything at all"),
		comment("2", "still going"),
	})

	// One comment's failure never aborts the batch.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, models.SentimentNeutral, r.Sentiment)
		assert.Zero(t, r.Score)
	}
}

func TestClassifyCommentLabelInvariant(t *testing.T) {
	analyzer := NewAnalyzer(&fakeStrategy{name: "fake", err: errors.New("always fails")}, 0)

	texts := []string{"love it", "hate it", "no opinion words here"}
	for _, text := range texts {
		result := analyzer.ClassifyComment(context.Background(), text)
		require.Contains(t, []string{models.SentimentPositive, models.SentimentNegative}, result.Sentiment)
		if result.Sentiment == models.SentimentPositive {
			require.Greater(t, result.Score, 0.0)
		} else {
			require.Less(t, result.Score, 0.0)
		}
	}
}
