package models

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"

	// SentimentNeutral never comes out of a classifier strategy. It only
	// appears as the batch-level placeholder when classification of a single
	// comment blows up entirely.
	SentimentNeutral = "neutral"
)

// SentimentResult is the per-comment classification outcome. Exactly one is
// produced for every non-empty comment in a batch, and it is never mutated
// after creation, only aggregated.
type SentimentResult struct {
	CommentID   string   `json:"comment_id"`
	Text        string   `json:"text"`
	CleanedText string   `json:"cleaned_text"`
	Product     string   `json:"product,omitempty"`
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	KeyAspects  []string `json:"key_aspects"`
	Issues      []string `json:"issues"`
	Praise      []string `json:"praise"`
	ModelUsed   string   `json:"model_used"`
}
