package analysis

// Report aggregates one analysis run over a document set: per-document
// issues plus the totals the renderers and snapshot writer consume.
type Report struct {
	Documents   []Document // descending token order
	Issues      map[string][]Issue
	TotalTokens int
	Budget      int
	Efficiency  float64
}

// Analyze runs redundancy detection and efficiency scoring over a document
// set. The returned report carries plain structured data only; rendering
// is the caller's concern.
func Analyze(docs DocumentSet, budget int) *Report {
	report := &Report{
		Documents:   docs.Sorted(),
		Issues:      make(map[string][]Issue),
		TotalTokens: docs.TotalTokens(),
		Budget:      budget,
		Efficiency:  Score(docs, budget),
	}

	for name, doc := range docs {
		if issues := DetectRedundancy(doc.Content); len(issues) > 0 {
			report.Issues[name] = issues
		}
	}

	return report
}

// IssueCount returns the total number of redundancy issues across all
// documents.
func (r *Report) IssueCount() int {
	total := 0
	for _, issues := range r.Issues {
		total += len(issues)
	}
	return total
}

// BudgetPct returns total tokens as a percentage of the budget, 0 when no
// budget is set.
func (r *Report) BudgetPct() float64 {
	if r.Budget <= 0 {
		return 0
	}
	return float64(r.TotalTokens) / float64(r.Budget) * 100
}
