package utils

import "strings"

// ExtractJSONObject pulls the first JSON object span out of LLM response
// text, tolerating surrounding prose and markdown fences. The span runs from
// the first '{' to the last '}'; whether it parses is the caller's problem.
func ExtractJSONObject(s string) (string, bool) {
	return extractSpan(s, '{', '}')
}

// ExtractJSONArray does the same for a JSON array span.
func ExtractJSONArray(s string) (string, bool) {
	return extractSpan(s, '[', ']')
}

func extractSpan(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
