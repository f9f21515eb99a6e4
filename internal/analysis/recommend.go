package analysis

import (
	"fmt"
	"strings"
)

// Recommendation is one suggested optimization with a rough token-savings
// estimate (0 when the suggestion has no direct savings).
type Recommendation struct {
	Text    string
	Savings int
}

// Thresholds for recommendation generation.
const (
	largeFileBudgetShare = 0.1  // files over this share of budget are flagged
	memoryPruneTokens    = 2000 // MEMORY.md above this suggests pruning
	skillReviewCount     = 5    // installed skills above this suggest review
)

// Recommend derives ranked optimization suggestions from an analysis
// report. Always returns at least one entry.
func Recommend(r *Report) []Recommendation {
	var recs []Recommendation

	// Large files first, biggest offenders leading.
	for _, doc := range r.Documents {
		if float64(doc.Tokens) > float64(r.Budget)*largeFileBudgetShare {
			recs = append(recs, Recommendation{
				Text:    fmt.Sprintf("Compress %s (uses %d%% of budget)", doc.Name, doc.Tokens*100/r.Budget),
				Savings: doc.Tokens / 3,
			})
		}
	}

	if issues := r.IssueCount(); issues > 5 {
		recs = append(recs, Recommendation{
			Text:    fmt.Sprintf("Fix %d redundancy issues across files", issues),
			Savings: r.TotalTokens / 10,
		})
	}

	for _, doc := range r.Documents {
		if doc.Name == "MEMORY.md" && doc.Tokens > memoryPruneTokens {
			recs = append(recs, Recommendation{
				Text:    "Prune MEMORY.md, removing stale entries",
				Savings: doc.Tokens / 2,
			})
		}
	}

	skillCount, skillTokens := 0, 0
	for _, doc := range r.Documents {
		if strings.HasPrefix(doc.Name, "skills/") {
			skillCount++
			skillTokens += doc.Tokens
		}
	}
	if skillCount > skillReviewCount {
		recs = append(recs, Recommendation{
			Text:    fmt.Sprintf("Review %d installed skills (%d tokens total)", skillCount, skillTokens),
			Savings: skillTokens / 4,
		})
	}

	if float64(r.TotalTokens) > float64(r.Budget)*0.5 {
		recs = append(recs, Recommendation{Text: "Consider splitting context across sessions"})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{Text: "Context looks well-optimized!"})
	}

	return recs
}

// AuditRecommend derives suggestions for a tool definition audit.
func AuditRecommend(tools []ToolDefinition, overlaps []OverlapPair) []Recommendation {
	var recs []Recommendation
	if len(tools) == 0 {
		return recs
	}

	if len(overlaps) > 0 {
		recs = append(recs, Recommendation{
			Text: fmt.Sprintf("Consolidate %d overlapping tool pair(s)", len(overlaps)),
		})
	}

	// Tools costing more than twice the average are candidates for shorter
	// descriptions.
	totalTokens := 0
	for _, t := range tools {
		totalTokens += t.Tokens
	}
	avg := totalTokens / len(tools)
	heavy := 0
	for _, t := range tools {
		if t.Tokens > avg*2 && heavy < 3 {
			recs = append(recs, Recommendation{
				Text:    fmt.Sprintf("Trim %s: %d tokens, consider a shorter description", t.Name, t.Tokens),
				Savings: t.Tokens / 2,
			})
			heavy++
		}
	}

	verbose := 0
	for _, t := range tools {
		if len(t.Description) > 300 {
			verbose++
		}
	}
	if verbose > 0 {
		recs = append(recs, Recommendation{
			Text: fmt.Sprintf("%d tools have descriptions over 300 chars, shorten them", verbose),
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{Text: "Tool definitions look well-optimized!"})
	}

	return recs
}
