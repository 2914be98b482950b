package models

// AspectCount is one entry of the ranked aspect list.
type AspectCount struct {
	Aspect string `json:"aspect"`
	Count  int    `json:"count"`
}

// InsightsSummary is the aggregated, dashboard-facing view over a batch of
// sentiment results. It is recomputed per request and never persisted.
type InsightsSummary struct {
	SentimentCounts  map[string]int            `json:"sentiment_counts"`
	AverageSentiment float64                   `json:"average_sentiment"`
	TopAspects       []AspectCount             `json:"top_aspects"`
	ProductSentiment map[string]map[string]int `json:"product_sentiment"`
	TotalComments    int                       `json:"total_comments"`
}

// Recommendation is a single improvement suggestion derived from negative
// feedback, either templated per product or generated by the LLM.
type Recommendation struct {
	Product    string `json:"product"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}
