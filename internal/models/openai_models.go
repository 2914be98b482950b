package models

import (
	"encoding/json"
	"strings"
)

// StringList tolerates LLM responses that put a bare string, null, or a
// proper array where a list of strings is expected. Whatever the wire shape,
// the field is normalized into an ordered []string at decode time.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*s = nil
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*s = nil
		return nil
	}
	*s = []string{one}
	return nil
}

// OpenAISentimentResponse is the JSON object the sentiment prompt asks the
// model to return.
type OpenAISentimentResponse struct {
	Sentiment  string     `json:"sentiment"`
	Score      float64    `json:"score"`
	KeyAspects StringList `json:"key_aspects"`
	Issues     StringList `json:"issues"`
	Praise     StringList `json:"praise"`
}

// OpenAIRecommendation is one element of the JSON array the recommendation
// prompt asks the model to return.
type OpenAIRecommendation struct {
	Title      string `json:"title"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}
