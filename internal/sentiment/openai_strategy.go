package sentiment

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/DEVILXD31/Sentibuddy/internal/clients"
	"github.com/DEVILXD31/Sentibuddy/internal/models"
	"github.com/DEVILXD31/Sentibuddy/internal/utils"
)

const sentimentSystemPrompt = `Analyze the sentiment of the customer comment you receive.

IMPORTANT: You MUST classify the sentiment as either "positive" or "negative". DO NOT use "neutral" classification.
If you're unsure, lean towards the sentiment that seems more likely based on the tone and content.

Provide a structured response with:
1. Overall sentiment (ONLY "positive" or "negative")
2. Sentiment score (from -1.0 to 1.0, where -1.0 is very negative and 1.0 is very positive)
3. Key aspects mentioned (product features, service quality, price, etc.)
4. Any specific issues or praise mentioned

Respond only with a valid JSON object. Do not include any additional text or commentary.

Expected JSON response format:
{
    "sentiment": "positive/negative",
    "score": 0.0,
    "key_aspects": ["aspect1", "aspect2"],
    "issues": ["issue1", "issue2"],
    "praise": ["praise1", "praise2"]
}`

// Default positive/negative scores used to repair a label whose score has
// the wrong sign.
const (
	defaultPositiveScore = 0.5
	defaultNegativeScore = -0.5
)

// OpenAIStrategy classifies comments through a chat completion call with a
// strict two-label JSON contract.
type OpenAIStrategy struct {
	client clients.ChatCompleter
	model  string
}

func NewOpenAIStrategy(client clients.ChatCompleter, model string) *OpenAIStrategy {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIStrategy{client: client, model: model}
}

func (s *OpenAIStrategy) Name() string { return "openai" }

func (s *OpenAIStrategy) Paced() bool { return true }

func (s *OpenAIStrategy) Classify(ctx context.Context, text string) (models.SentimentResult, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Customer comment: %q", text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.SentimentResult{}, fmt.Errorf("chat completion returned no choices")
	}

	return parseSentimentResponse(resp.Choices[0].Message.Content)
}

// parseSentimentResponse extracts the first JSON object from the response
// text and normalizes it into a result that honors the two-label contract.
func parseSentimentResponse(content string) (models.SentimentResult, error) {
	raw, ok := utils.ExtractJSONObject(content)
	if !ok {
		return models.SentimentResult{}, fmt.Errorf("no JSON object found in response")
	}

	var parsed models.OpenAISentimentResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to parse sentiment JSON: %w", err)
	}

	// The prompt forbids neutral, but the model occasionally returns it
	// anyway. Relabel by score sign rather than dropping the result.
	if parsed.Sentiment == models.SentimentNeutral {
		if parsed.Score >= 0 {
			parsed.Sentiment = models.SentimentPositive
		} else {
			parsed.Sentiment = models.SentimentNegative
		}
	}

	switch parsed.Sentiment {
	case models.SentimentPositive:
		if parsed.Score <= 0 {
			parsed.Score = defaultPositiveScore
		}
	case models.SentimentNegative:
		if parsed.Score >= 0 {
			parsed.Score = defaultNegativeScore
		}
	default:
		return models.SentimentResult{}, fmt.Errorf("unexpected sentiment label %q", parsed.Sentiment)
	}

	return models.SentimentResult{
		Sentiment:  parsed.Sentiment,
		Score:      parsed.Score,
		KeyAspects: orEmpty(parsed.KeyAspects),
		Issues:     orEmpty(parsed.Issues),
		Praise:     orEmpty(parsed.Praise),
	}, nil
}

func orEmpty(list models.StringList) []string {
	if list == nil {
		return []string{}
	}
	return list
}
