package analysis

import (
	"strings"
	"unicode"
)

// OverlapReason explains why two tools were flagged as overlapping.
type OverlapReason string

const (
	OverlapSimilarNames        OverlapReason = "Similar names"
	OverlapSimilarDescriptions OverlapReason = "Similar descriptions"
)

// OverlapPair records one pair of tools with overlapping names or
// descriptions. Each unordered pair is reported at most once.
type OverlapPair struct {
	ToolA  string
	ToolB  string
	Reason OverlapReason
}

// Generic words that carry no signal when comparing tool names.
var nameStopwords = map[string]bool{
	"get": true, "set": true, "list": true, "the": true, "a": true,
}

// Filler words ignored when comparing descriptions.
var descStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "to": true,
	"of": true, "and": true, "is": true, "in": true,
}

// FindOverlaps compares every pair of tool definitions for name or
// description similarity. Name similarity takes precedence; a pair flagged
// for names is not checked for descriptions. O(n^2) over tool counts in
// the tens, so no indexing is needed.
func FindOverlaps(tools []ToolDefinition) []OverlapPair {
	var overlaps []OverlapPair
	for i := 0; i < len(tools); i++ {
		for j := i + 1; j < len(tools); j++ {
			a, b := tools[i], tools[j]

			wordsA := nameWords(a.Name)
			wordsB := nameWords(b.Name)
			shared := intersect(wordsA, wordsB)
			if len(shared) >= 1 && float64(len(shared))/float64(max(len(wordsA), len(wordsB), 1)) > 0.5 {
				overlaps = append(overlaps, OverlapPair{a.Name, b.Name, OverlapSimilarNames})
				continue
			}

			if a.Description == "" || b.Description == "" {
				continue
			}
			descA := descWords(a.Description)
			descB := descWords(b.Description)
			if len(descA) == 0 || len(descB) == 0 {
				continue
			}
			overlap := float64(len(intersect(descA, descB))) / float64(min(len(descA), len(descB)))
			if overlap > 0.6 {
				overlaps = append(overlaps, OverlapPair{a.Name, b.Name, OverlapSimilarDescriptions})
			}
		}
	}
	return overlaps
}

// nameWords splits a normalized tool name into its significant words.
func nameWords(name string) map[string]bool {
	normalized := strings.NewReplacer("-", "_", ".", "_").Replace(strings.ToLower(name))
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if !nameStopwords[w] {
			set[w] = true
		}
	}
	return set
}

// descWords splits a description into its significant words.
func descWords(desc string) map[string]bool {
	words := strings.Fields(strings.ToLower(desc))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if !descStopwords[w] {
			set[w] = true
		}
	}
	return set
}

// intersect returns the keys present in both sets.
func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for w := range a {
		if b[w] {
			out[w] = true
		}
	}
	return out
}
