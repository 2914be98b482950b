package sentiment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/DEVILXD31/Sentibuddy/config"
	"github.com/DEVILXD31/Sentibuddy/internal/clients"
	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

// Analyzer runs a classification strategy over batches of comments. Every
// strategy failure is absorbed: either by the keyword fallback (strategy
// returned an error) or by a neutral placeholder (classification panicked),
// so a batch always yields one result per non-empty comment.
type Analyzer struct {
	strategy Strategy
	delay    time.Duration
}

func NewAnalyzer(strategy Strategy, rateLimitDelay time.Duration) *Analyzer {
	return &Analyzer{strategy: strategy, delay: rateLimitDelay}
}

// StrategyFor maps a caller-supplied model name to a strategy. "gemini" is
// accepted as a legacy alias for the remote strategy; unknown values also
// land on the remote strategy, matching the upload form's default.
func StrategyFor(cfg config.Config, completer clients.ChatCompleter, modelType string) Strategy {
	switch strings.ToLower(strings.TrimSpace(modelType)) {
	case "bert":
		return NewLocalStrategy(cfg.ModelDir)
	case "vader":
		return NewVaderStrategy()
	default:
		return NewOpenAIStrategy(completer, cfg.OpenAIModel)
	}
}

// ClassifyComment classifies a single cleaned text. On strategy error the
// keyword fallback supplies the result, so this never fails.
func (a *Analyzer) ClassifyComment(ctx context.Context, text string) models.SentimentResult {
	result, err := a.strategy.Classify(ctx, text)
	if err != nil {
		slog.Warn("[SentimentAnalyzer] Strategy failed, using keyword fallback",
			slog.String("strategy", a.strategy.Name()),
			slog.String("error", err.Error()))
		result = FallbackClassify(text)
	}
	result.ModelUsed = a.strategy.Name()
	return result
}

// AnalyzeBatch classifies comments sequentially, pacing remote calls with
// the configured delay. Comments whose cleaned text is empty are skipped;
// everything else produces exactly one result.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, comments []models.Comment) []models.SentimentResult {
	results := make([]models.SentimentResult, 0, len(comments))

	for _, comment := range comments {
		if strings.TrimSpace(comment.CleanedText) == "" {
			continue
		}

		if a.strategy.Paced() && a.delay > 0 {
			time.Sleep(a.delay)
		}

		result := a.classifyIsolated(ctx, comment)
		result.CommentID = comment.ID
		result.Text = comment.Text
		result.CleanedText = comment.CleanedText
		result.Product = comment.Product
		results = append(results, result)
	}

	slog.Info("[SentimentAnalyzer] Batch analyzed",
		slog.String("strategy", a.strategy.Name()),
		slog.Int("comments", len(comments)),
		slog.Int("results", len(results)))

	return results
}

// classifyIsolated contains a single comment's failure: a panic anywhere in
// the strategy or fallback degrades that one comment to a neutral
// zero-score placeholder instead of aborting the batch.
func (a *Analyzer) classifyIsolated(ctx context.Context, comment models.Comment) (result models.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[SentimentAnalyzer] Classification panicked, using placeholder",
				slog.String("comment_id", comment.ID),
				slog.Any("panic", r))
			result = models.SentimentResult{
				Sentiment:  models.SentimentNeutral,
				Score:      0.0,
				KeyAspects: []string{},
				Issues:     []string{},
				Praise:     []string{},
				ModelUsed:  a.strategy.Name(),
			}
		}
	}()

	return a.ClassifyComment(ctx, comment.CleanedText)
}
