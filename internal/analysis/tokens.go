// Package analysis implements the context efficiency analysis engine:
// token estimation, redundancy detection, efficiency scoring, and
// tool-definition auditing over in-memory document sets.
package analysis

import "unicode/utf8"

// EstimateTokens approximates the token count for text using the ~4 chars
// per token heuristic. This is a deliberate approximation, not a tokenizer;
// for precise counts use a model-specific tokenizer. Everything costs at
// least one token, the empty string included.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text) / 4
	if n < 1 {
		return 1
	}
	return n
}
