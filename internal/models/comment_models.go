package models

// Comment is a single customer comment as it enters the pipeline. CleanedText
// is derived once during preprocessing; records are not mutated afterwards.
type Comment struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	CleanedText string   `json:"cleaned_text"`
	Product     string   `json:"product,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Date        string   `json:"date,omitempty"`
}
