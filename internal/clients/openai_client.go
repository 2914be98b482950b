// Package clients holds constructors for the external services the pipeline
// talks to.
package clients

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Timeout for individual OpenAI API requests.
const openAIRequestTimeout = 60 * time.Second

// ChatCompleter is the slice of the OpenAI client the pipeline uses. The
// concrete *openai.Client satisfies it; tests substitute stubs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIClient struct {
	Client *openai.Client
}

// NewOpenAIClient builds an OpenAI client with a bounded HTTP timeout. The
// key comes from configuration; validation that it is present happens at
// process start.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.Duration("timeout", openAIRequestTimeout))

	return &OpenAIClient{Client: openai.NewClientWithConfig(cfg)}
}
