// Package insights aggregates per-comment sentiment results into the
// dashboard summary and the recommendation list.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/DEVILXD31/Sentibuddy/internal/clients"
	"github.com/DEVILXD31/Sentibuddy/internal/models"
	"github.com/DEVILXD31/Sentibuddy/internal/utils"
)

// ErrMissingFields signals a caller contract violation: results entering the
// aggregator must carry a sentiment label. This is not a recoverable data
// issue and is surfaced to the caller.
var ErrMissingFields = errors.New("sentiment results missing required fields")

const (
	topAspectLimit       = 10
	topIssuesPerProduct  = 3
	topIssuesForPrompt   = 5
	negativeCommentLimit = 10
)

// Summarize computes the dashboard statistics for a batch of results. The
// counts mapping always carries all three labels, even at zero; the average
// of an empty batch is zero.
func Summarize(results []models.SentimentResult) (models.InsightsSummary, error) {
	summary := models.InsightsSummary{
		SentimentCounts: map[string]int{
			models.SentimentPositive: 0,
			models.SentimentNeutral:  0,
			models.SentimentNegative: 0,
		},
		TopAspects:       []models.AspectCount{},
		ProductSentiment: map[string]map[string]int{},
		TotalComments:    len(results),
	}

	var total float64
	aspectCounts := map[string]int{}
	var aspectOrder []string

	for _, r := range results {
		if r.Sentiment == "" {
			return models.InsightsSummary{}, fmt.Errorf("%w: sentiment label absent", ErrMissingFields)
		}

		summary.SentimentCounts[r.Sentiment]++
		total += r.Score

		for _, aspect := range r.KeyAspects {
			if _, seen := aspectCounts[aspect]; !seen {
				aspectOrder = append(aspectOrder, aspect)
			}
			aspectCounts[aspect]++
		}

		if r.Product != "" {
			if _, seen := summary.ProductSentiment[r.Product]; !seen {
				summary.ProductSentiment[r.Product] = map[string]int{
					models.SentimentPositive: 0,
					models.SentimentNeutral:  0,
					models.SentimentNegative: 0,
				}
			}
			summary.ProductSentiment[r.Product][r.Sentiment]++
		}
	}

	if len(results) > 0 {
		summary.AverageSentiment = total / float64(len(results))
	}

	summary.TopAspects = rankByCount(aspectOrder, aspectCounts, topAspectLimit)

	return summary, nil
}

// rankByCount orders keys by descending count, breaking ties by first-seen
// order, truncated to limit.
func rankByCount(order []string, counts map[string]int, limit int) []models.AspectCount {
	ranked := make([]models.AspectCount, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, models.AspectCount{Aspect: key, Count: counts[key]})
	}

	// Insertion sort keeps the first-seen order stable among equal counts.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Generator produces recommendations from negative feedback. The completer
// is optional; without it only the templated per-product recommendations
// (plus defaults) are produced.
type Generator struct {
	completer clients.ChatCompleter
	model     string
}

func NewGenerator(completer clients.ChatCompleter, model string) *Generator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Generator{completer: completer, model: model}
}

// Recommend builds the recommendation list: per-product templated entries
// first, then AI-generated ones. It never returns an empty list.
func (g *Generator) Recommend(ctx context.Context, results []models.SentimentResult) []models.Recommendation {
	negatives := filterNegative(results)

	recommendations := productRecommendations(negatives)

	if g.completer != nil && len(negatives) > 0 {
		recommendations = append(recommendations, g.aiRecommendations(ctx, negatives)...)
	}

	if len(recommendations) == 0 {
		recommendations = []models.Recommendation{{
			Product:    "General",
			Issue:      "Not enough negative feedback to generate specific recommendations",
			Suggestion: "Continue collecting customer feedback to identify improvement areas",
		}}
	}

	return recommendations
}

func filterNegative(results []models.SentimentResult) []models.SentimentResult {
	var negatives []models.SentimentResult
	for _, r := range results {
		if r.Sentiment == models.SentimentNegative {
			negatives = append(negatives, r)
		}
	}
	return negatives
}

// issuePool returns the issues a negative result contributes: the issues
// field when present, otherwise its key aspects.
func issuePool(r models.SentimentResult) []string {
	if len(r.Issues) > 0 {
		return r.Issues
	}
	return r.KeyAspects
}

// productRecommendations emits up to three templated recommendations per
// product, ranked by issue frequency with first-seen tie-breaking.
func productRecommendations(negatives []models.SentimentResult) []models.Recommendation {
	byProduct := map[string][]models.SentimentResult{}
	var productOrder []string
	for _, r := range negatives {
		if r.Product == "" {
			continue
		}
		if _, seen := byProduct[r.Product]; !seen {
			productOrder = append(productOrder, r.Product)
		}
		byProduct[r.Product] = append(byProduct[r.Product], r)
	}

	recommendations := []models.Recommendation{}
	for _, product := range productOrder {
		counts := map[string]int{}
		var order []string
		for _, r := range byProduct[product] {
			for _, issue := range issuePool(r) {
				if _, seen := counts[issue]; !seen {
					order = append(order, issue)
				}
				counts[issue]++
			}
		}

		for _, top := range rankByCount(order, counts, topIssuesPerProduct) {
			recommendations = append(recommendations, models.Recommendation{
				Product:    product,
				Issue:      fmt.Sprintf("%s (mentioned %d times)", top.Aspect, top.Count),
				Suggestion: fmt.Sprintf("Consider addressing %s issues in %s", top.Aspect, product),
			})
		}
	}

	return recommendations
}

// topOverallIssues ranks the issue pool across all negative results.
func topOverallIssues(negatives []models.SentimentResult, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, r := range negatives {
		for _, issue := range issuePool(r) {
			if _, seen := counts[issue]; !seen {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}

	ranked := rankByCount(order, counts, limit)
	issues := make([]string, 0, len(ranked))
	for _, rc := range ranked {
		issues = append(issues, rc.Aspect)
	}
	return issues
}

const recommendationPromptTemplate = `Based on the following negative customer comments and aspects mentioned, provide 3-5 specific product improvement recommendations:

Negative Comments:
%s

Negative Aspects Mentioned: %s

For each recommendation, please provide:
1. A clear, actionable title
2. A brief explanation of the issue
3. A specific suggestion for improvement

Format your response as a JSON array of recommendation objects, each with 'title', 'issue', and 'suggestion' fields. Respond only with the JSON array.`

// aiRecommendations asks the LLM for structured recommendations. Any call or
// parse failure degrades to a single fixed default.
func (g *Generator) aiRecommendations(ctx context.Context, negatives []models.SentimentResult) []models.Recommendation {
	comments := negatives
	if len(comments) > negativeCommentLimit {
		comments = comments[:negativeCommentLimit]
	}

	var lines []string
	for _, r := range comments {
		lines = append(lines, "- "+r.CleanedText)
	}
	prompt := fmt.Sprintf(recommendationPromptTemplate,
		strings.Join(lines, "\n"),
		strings.Join(topOverallIssues(negatives, topIssuesForPrompt), ", "))

	resp, err := g.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		slog.Warn("[InsightsGenerator] Recommendation request failed, using default",
			slog.String("error", errString(err)))
		return defaultAIRecommendations()
	}

	raw, ok := utils.ExtractJSONArray(resp.Choices[0].Message.Content)
	if !ok {
		slog.Warn("[InsightsGenerator] No JSON array in recommendation response, using default")
		return defaultAIRecommendations()
	}

	var parsed []models.OpenAIRecommendation
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		slog.Warn("[InsightsGenerator] Failed to parse recommendation JSON, using default",
			slog.String("error", err.Error()))
		return defaultAIRecommendations()
	}

	recommendations := make([]models.Recommendation, 0, len(parsed))
	for _, rec := range parsed {
		if rec.Title == "" && rec.Issue == "" && rec.Suggestion == "" {
			continue
		}
		product := rec.Title
		if product == "" {
			product = "General"
		}
		recommendations = append(recommendations, models.Recommendation{
			Product:    product,
			Issue:      rec.Issue,
			Suggestion: rec.Suggestion,
		})
	}

	if len(recommendations) == 0 {
		return defaultAIRecommendations()
	}
	return recommendations
}

func defaultAIRecommendations() []models.Recommendation {
	return []models.Recommendation{{
		Product:    "General",
		Issue:      "Various issues mentioned in customer feedback",
		Suggestion: "Review all negative feedback and prioritize fixing the most common issues",
	}}
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}
