// Package preprocess normalizes raw comment text before classification.
package preprocess

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	disallowedPattern = regexp.MustCompile(`[^\w\s.,!?]`)
	spacePattern      = regexp.MustCompile(`\s+`)
)

// CleanText lowercases the input and strips URLs, markup, and every character
// outside letters, digits, whitespace and basic punctuation (., , ! ?). Runs
// of whitespace collapse to a single space. It never fails; garbage in means
// an empty string out.
func CleanText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// Markdown renders to HTML, so one tag strip handles both markdown and
	// raw HTML input.
	rendered := string(blackfriday.Run([]byte(text), blackfriday.WithNoExtensions()))
	plain := tagPattern.ReplaceAllString(rendered, " ")
	plain = html.UnescapeString(plain)

	plain = strings.ToLower(plain)
	plain = urlPattern.ReplaceAllString(plain, "")
	plain = disallowedPattern.ReplaceAllString(plain, "")
	plain = spacePattern.ReplaceAllString(plain, " ")

	return strings.TrimSpace(plain)
}
