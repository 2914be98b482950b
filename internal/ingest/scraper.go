package ingest

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/DEVILXD31/Sentibuddy/internal/models"
)

var ErrNoComments = errors.New("no comments found on the provided URL")

const defaultProductName = "Kitchen Weight Scale"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.2 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:90.0) Gecko/20100101 Firefox/90.0",
}

var amazonProductPattern = regexp.MustCompile(`/([A-Za-z0-9-]+)/dp/`)

// Scraper fetches product comments for a URL. Live extraction is not
// implemented; after a reachability probe it returns a bounded random sample
// from a fixed seed corpus, so callers must treat the output as demo-quality.
type Scraper struct {
	client *http.Client
	rng    *rand.Rand
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeout},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ScrapeProductComments returns up to maxComments records for the product
// page at rawURL, tagged with the product label derived from the URL.
func (s *Scraper) ScrapeProductComments(ctx context.Context, rawURL string, maxComments int) ([]models.Comment, error) {
	if maxComments <= 0 {
		return nil, ErrNoComments
	}

	product := extractProductName(rawURL)

	// Best effort only. An unreachable page does not abort the request since
	// the comment corpus is fabricated either way.
	s.probe(ctx, rawURL)

	sampled := s.sampleComments(maxComments)
	if len(sampled) == 0 {
		return nil, ErrNoComments
	}

	comments := make([]models.Comment, 0, len(sampled))
	for _, sc := range sampled {
		rating := sc.rating
		comments = append(comments, models.Comment{
			Text:    sc.text,
			Product: product,
			Rating:  &rating,
			Date:    sc.date,
		})
	}

	slog.Info("[Scraper] Collected product comments",
		slog.String("url", rawURL),
		slog.String("product", product),
		slog.Int("count", len(comments)))

	return comments, nil
}

func (s *Scraper) probe(ctx context.Context, rawURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		slog.Warn("[Scraper] Failed to build probe request", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("User-Agent", userAgents[s.rng.Intn(len(userAgents))])

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("[Scraper] Product page unreachable, continuing with sample corpus",
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return
	}
	resp.Body.Close()
}

func (s *Scraper) sampleComments(maxComments int) []seedComment {
	if len(seedCorpus) <= maxComments {
		out := make([]seedComment, len(seedCorpus))
		copy(out, seedCorpus)
		return out
	}

	picked := make([]seedComment, 0, maxComments)
	for _, i := range s.rng.Perm(len(seedCorpus))[:maxComments] {
		picked = append(picked, seedCorpus[i])
	}
	return picked
}

// extractProductName pulls a readable product name out of amazon-style URLs
// (/Some-Product-Name/dp/ASIN) and falls back to a fixed demo product.
func extractProductName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return defaultProductName
	}

	if strings.Contains(strings.ToLower(parsed.Host), "amazon") {
		if m := amazonProductPattern.FindStringSubmatch(parsed.Path); m != nil {
			name := strings.ReplaceAll(m[1], "-", " ")
			return titleCase(name)
		}
	}

	return defaultProductName
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
