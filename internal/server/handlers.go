// Package server exposes the HTTP API: CSV upload, URL analysis, and the
// dashboard summary placeholder. Handlers are transport-thin; they validate
// input, run the pipeline, and shape the JSON envelope.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DEVILXD31/Sentibuddy/config"
	"github.com/DEVILXD31/Sentibuddy/internal/ingest"
	"github.com/DEVILXD31/Sentibuddy/internal/insights"
	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

// Analyzer classifies a batch of preprocessed comments.
type Analyzer interface {
	AnalyzeBatch(ctx context.Context, comments []models.Comment) []models.SentimentResult
}

// AnalyzerFactory builds the analyzer for a caller-selected model type.
type AnalyzerFactory func(modelType string) Analyzer

// Recommender turns sentiment results into improvement recommendations.
type Recommender interface {
	Recommend(ctx context.Context, results []models.SentimentResult) []models.Recommendation
}

// CommentScraper collects product comments for a URL.
type CommentScraper interface {
	ScrapeProductComments(ctx context.Context, url string, maxComments int) ([]models.Comment, error)
}

type Server struct {
	cfg         config.Config
	newAnalyzer AnalyzerFactory
	recommender Recommender
	scraper     CommentScraper
	loadCSV     func(path string) ([]models.Comment, error)
}

func New(cfg config.Config, factory AnalyzerFactory, recommender Recommender, scraper CommentScraper) *Server {
	return &Server{
		cfg:         cfg,
		newAnalyzer: factory,
		recommender: recommender,
		scraper:     scraper,
		loadCSV:     ingest.LoadCSV,
	}
}

const defaultMaxComments = 100

type analyzeURLRequest struct {
	URL         string `json:"url"`
	MaxComments *int   `json:"max_comments"`
	Model       string `json:"model"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "sentibuddy",
		"status":  "ok",
		"endpoints": []string{
			"POST /upload",
			"POST /analyze-url",
			"GET /api/sentiment-summary",
		},
	})
}

// handleUpload accepts a multipart CSV upload plus a model selection and
// runs the full pipeline over it.
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	if strings.TrimSpace(file.Filename) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	path := filepath.Join(s.cfg.UploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	modelType := c.DefaultPostForm("model", "gemini")

	comments, err := s.loadCSV(path)
	if err != nil {
		status := http.StatusInternalServerError
		if isIngestError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	envelope, err := s.runPipeline(c.Request.Context(), comments, modelType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// handleSentimentSummary returns the static placeholder the dashboard polls
// before any analysis has run. Results are never persisted server-side.
func (s *Server) handleSentimentSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sentiment_distribution": gin.H{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
		"average_sentiment": 0,
		"top_aspects":       []models.AspectCount{},
		"product_sentiment": gin.H{},
		"recommendations":   []models.Recommendation{},
	})
}

// handleAnalyzeURL scrapes comments for a product URL and runs the pipeline
// over them.
func (s *Server) handleAnalyzeURL(c *gin.Context) {
	var req analyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No URL provided"})
		return
	}

	maxComments := defaultMaxComments
	if req.MaxComments != nil {
		maxComments = *req.MaxComments
	}
	modelType := req.Model
	if modelType == "" {
		modelType = "gemini"
	}

	comments, err := s.scraper.ScrapeProductComments(c.Request.Context(), req.URL, maxComments)
	if err != nil {
		if errors.Is(err, ingest.ErrNoComments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No comments found on the provided URL"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	envelope, err := s.runPipeline(c.Request.Context(), comments, modelType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	envelope["source"] = "web_scraping"
	envelope["url"] = req.URL

	c.JSON(http.StatusOK, envelope)
}

// runPipeline is the shared preprocess → classify → aggregate path behind
// both ingestion endpoints.
func (s *Server) runPipeline(ctx context.Context, comments []models.Comment, modelType string) (gin.H, error) {
	processed := ingest.Preprocess(comments)

	results := s.newAnalyzer(modelType).AnalyzeBatch(ctx, processed)

	summary, err := insights.Summarize(results)
	if err != nil {
		return nil, err
	}
	recommendations := s.recommender.Recommend(ctx, results)

	slog.Info("[Server] Pipeline completed",
		slog.String("model", modelType),
		slog.Int("comments", len(processed)),
		slog.Int("results", len(results)))

	return gin.H{
		"success":                true,
		"model_used":             modelType,
		"comments_count":         len(results),
		"sentiment_distribution": summary.SentimentCounts,
		"average_sentiment":      summary.AverageSentiment,
		"top_aspects":            summary.TopAspects,
		"product_sentiment":      summary.ProductSentiment,
		"recommendations":        recommendations,
	}, nil
}

func isIngestError(err error) bool {
	return errors.Is(err, ingest.ErrFileNotFound) ||
		errors.Is(err, ingest.ErrEmptyFile) ||
		errors.Is(err, ingest.ErrBadFormat) ||
		errors.Is(err, ingest.ErrNoCommentColumn)
}
