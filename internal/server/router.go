package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router wires middleware and routes onto a fresh gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(s.cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = s.cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", s.handleIndex)
	r.POST("/upload", s.handleUpload)
	r.GET("/api/sentiment-summary", s.handleSentimentSummary)
	r.POST("/analyze-url", s.handleAnalyzeURL)

	return r
}

// requestLogger emits one slog line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("[HTTP] Request handled",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
