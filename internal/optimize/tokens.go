// Package optimize rewrites prompts using model-specific guides.
package optimize

import "strings"

// TokenCounter counts tokens in text. Callers with a real tokenizer supply
// their own; the default is the whitespace word-count proxy.
type TokenCounter func(text string) int

// CountTokens approximates token count as whitespace-delimited word count.
// It is a proxy, not a tokenizer: good enough for savings accounting.
func CountTokens(text string) int {
	return len(strings.Fields(text))
}

// TokenStats holds before/after token counts.
type TokenStats struct {
	Before int `json:"original_tokens"`
	After  int `json:"optimized_tokens"`
}

// Saved returns the number of tokens saved.
func (s TokenStats) Saved() int {
	return s.Before - s.After
}

// SavedPercentage returns the percentage reduction (0-100).
// Zero when Before is zero.
func (s TokenStats) SavedPercentage() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Saved()) / float64(s.Before) * 100
}
