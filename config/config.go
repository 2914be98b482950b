package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/subosito/gotenv"
)

// Config carries every runtime setting the service needs. It is built once
// at startup and handed to constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Port string
	Env  string

	OpenAIAPIKey   string
	OpenAIModel    string
	RateLimitDelay time.Duration

	UploadDir string
	ModelDir  string

	ScrapeTimeout time.Duration

	CORSAllowedOrigins []string
}

func LoadEnv(env string) {
	envFile := ".env"
	if env != "" {
		envFile = ".env." + env
	}
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// Load reads configuration from the environment and validates it.
// OPENAI_API_KEY is required: the remote strategy and the AI recommendation
// step cannot run without it.
func Load() (Config, error) {
	cfg := Config{
		Port:               getenv("PORT", "5000"),
		Env:                getenv("APP_ENV", "dev"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getenv("OPENAI_MODEL", ""),
		RateLimitDelay:     getdur("RATE_LIMIT_DELAY", time.Second),
		UploadDir:          getenv("UPLOAD_DIR", "uploads"),
		ModelDir:           getenv("MODEL_DIR", "./internal/transformers/models"),
		ScrapeTimeout:      getdur("SCRAPE_TIMEOUT", 10*time.Second),
		CORSAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.OpenAIAPIKey == "" {
		return cfg, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.RateLimitDelay < 0 {
		return cfg, errors.New("RATE_LIMIT_DELAY must be >= 0")
	}
	if cfg.ScrapeTimeout <= 0 {
		return cfg, errors.New("SCRAPE_TIMEOUT must be > 0")
	}

	return cfg, nil
}

// MustLoad panics when the configuration is unusable. A missing API key is
// fatal at process start.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
