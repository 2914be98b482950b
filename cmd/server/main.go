package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DEVILXD31/Sentibuddy/config"
	"github.com/DEVILXD31/Sentibuddy/internal/clients"
	"github.com/DEVILXD31/Sentibuddy/internal/ingest"
	"github.com/DEVILXD31/Sentibuddy/internal/insights"
	"github.com/DEVILXD31/Sentibuddy/internal/logging"
	"github.com/DEVILXD31/Sentibuddy/internal/sentiment"
	"github.com/DEVILXD31/Sentibuddy/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.MustLoad()

	openAI := clients.NewOpenAIClient(cfg.OpenAIAPIKey)

	factory := server.AnalyzerFactory(func(modelType string) server.Analyzer {
		strategy := sentiment.StrategyFor(cfg, openAI.Client, modelType)
		return sentiment.NewAnalyzer(strategy, cfg.RateLimitDelay)
	})
	recommender := insights.NewGenerator(openAI.Client, cfg.OpenAIModel)
	scraper := ingest.NewScraper(cfg.ScrapeTimeout)

	srv := server.New(cfg, factory, recommender, scraper)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // classification batches can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("[Main] Server listening", slog.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
