package sentiment

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

type stubCompleter struct {
	content string
	err     error
	calls   int
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func TestOpenAIStrategyClassify(t *testing.T) {
	stub := &stubCompleter{content: `{"sentiment":"positive","score":0.9,"key_aspects":["accuracy"],"issues":[],"praise":["very accurate"]}`}
	strategy := NewOpenAIStrategy(stub, "")

	result, err := strategy.Classify(context.Background(), "very accurate scale")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.Equal(t, 0.9, result.Score)
	assert.Equal(t, []string{"accuracy"}, result.KeyAspects)
	assert.Equal(t, []string{"very accurate"}, result.Praise)
}

func TestOpenAIStrategyToleratesSurroundingProse(t *testing.T) {
	stub := &stubCompleter{content: "Sure! Here is the analysis:\n```json\n{\"sentiment\":\"negative\",\"score\":-0.7,\"key_aspects\":[\"durability\"],\"issues\":[\"stopped working\"],\"praise\":[]}\n```\nHope that helps."}
	strategy := NewOpenAIStrategy(stub, "")

	result, err := strategy.Classify(context.Background(), "stopped working")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.Equal(t, -0.7, result.Score)
	assert.Equal(t, []string{"stopped working"}, result.Issues)
}

func TestOpenAIStrategyClassifyError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exceeded")}
	strategy := NewOpenAIStrategy(stub, "")

	_, err := strategy.Classify(context.Background(), "anything")
	assert.Error(t, err)
}

func TestParseSentimentResponse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantLabel string
		wantScore float64
		wantErr   bool
	}{
		{
			name:      "neutral relabeled positive by score sign",
			content:   `{"sentiment":"neutral","score":0.3}`,
			wantLabel: models.SentimentPositive,
			wantScore: 0.3,
		},
		{
			name:      "neutral with zero score becomes positive default",
			content:   `{"sentiment":"neutral","score":0}`,
			wantLabel: models.SentimentPositive,
			wantScore: 0.5,
		},
		{
			name:      "neutral relabeled negative by score sign",
			content:   `{"sentiment":"neutral","score":-0.2}`,
			wantLabel: models.SentimentNegative,
			wantScore: -0.2,
		},
		{
			name:      "positive with wrong sign repaired",
			content:   `{"sentiment":"positive","score":-0.4}`,
			wantLabel: models.SentimentPositive,
			wantScore: 0.5,
		},
		{
			name:      "negative with wrong sign repaired",
			content:   `{"sentiment":"negative","score":0.4}`,
			wantLabel: models.SentimentNegative,
			wantScore: -0.5,
		},
		{
			name:      "aspect as bare string normalized",
			content:   `{"sentiment":"positive","score":0.8,"key_aspects":"display"}`,
			wantLabel: models.SentimentPositive,
			wantScore: 0.8,
		},
		{name: "no json object", content: "cannot help with that", wantErr: true},
		{name: "malformed json", content: `{"sentiment": "positive",`, wantErr: true},
		{name: "unknown label", content: `{"sentiment":"mixed","score":0.1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseSentimentResponse(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, result.Sentiment)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestParseSentimentResponseNeverZeroScore(t *testing.T) {
	contents := []string{
		`{"sentiment":"positive","score":0}`,
		`{"sentiment":"negative","score":0}`,
		`{"sentiment":"neutral","score":0}`,
	}
	for _, content := range contents {
		result, err := parseSentimentResponse(content)
		require.NoError(t, err)
		require.NotZero(t, result.Score)
	}
}
