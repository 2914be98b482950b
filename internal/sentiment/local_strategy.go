package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

const bertModelName = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"

// The session and pipeline are process-wide: loaded at most once on first
// use, read-only afterwards, never torn down.
var (
	bertOnce     sync.Once
	bertSession  *hugot.Session
	bertPipeline *pipelines.TextClassificationPipeline
	bertLoadErr  error
)

// LocalStrategy runs a pre-trained binary sentiment classifier on-box. It
// contributes no aspect extraction.
type LocalStrategy struct {
	modelDir string
}

func NewLocalStrategy(modelDir string) *LocalStrategy {
	return &LocalStrategy{modelDir: modelDir}
}

func (s *LocalStrategy) Name() string { return "bert" }

func (s *LocalStrategy) Paced() bool { return false }

// EnsureModel downloads the model when absent and initializes the pipeline.
// Safe to call from Classify on first use or eagerly at startup.
func (s *LocalStrategy) EnsureModel() error {
	bertOnce.Do(func() {
		bertLoadErr = s.load()
	})
	return bertLoadErr
}

func (s *LocalStrategy) load() error {
	if err := os.MkdirAll(s.modelDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(s.modelDir, strings.ReplaceAll(bertModelName, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[LocalStrategy] Model not found, downloading...", slog.String("model", bertModelName))
		downloaded, err := hugot.DownloadModel(bertModelName, s.modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return fmt.Errorf("failed to download model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[LocalStrategy] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[LocalStrategy] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		return fmt.Errorf("failed to initialize classification pipeline: %w", err)
	}

	bertSession = session
	bertPipeline = pipeline
	slog.Info("[LocalStrategy] Sentiment model loaded")
	return nil
}

func (s *LocalStrategy) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	if err := s.EnsureModel(); err != nil {
		return models.SentimentResult{}, err
	}

	output, err := bertPipeline.RunPipeline([]string{text})
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("pipeline run failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return models.SentimentResult{}, fmt.Errorf("pipeline returned no classification output")
	}

	top := output.ClassificationOutputs[0][0]
	label := strings.ToLower(top.Label)

	sentiment := models.SentimentNegative
	if label == "positive" {
		sentiment = models.SentimentPositive
	}

	// Confidence is in [0, 1]; negate it for negative predictions to get a
	// signed score.
	score := float64(top.Score)
	if sentiment == models.SentimentNegative {
		score = -score
	}
	if score == 0 {
		if sentiment == models.SentimentPositive {
			score = defaultPositiveScore
		} else {
			score = defaultNegativeScore
		}
	}

	return models.SentimentResult{
		Sentiment:  sentiment,
		Score:      score,
		KeyAspects: []string{},
		Issues:     []string{},
		Praise:     []string{},
	}, nil
}
