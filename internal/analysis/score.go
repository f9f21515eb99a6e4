package analysis

// Efficiency score weights. Size pressure dominates, redundancy and file
// count overhead split the rest.
const (
	sizeWeight       = 0.4
	redundancyWeight = 0.3
	countWeight      = 0.3
)

// Score computes the overall efficiency score (0-100) for a document set
// against a token budget. An empty set or a non-positive budget scores a
// perfect 100 by convention.
// The size sub-score is a step function with literal less-than boundaries;
// they are kept exactly as shipped so scores stay reproducible across
// versions.
func Score(docs DocumentSet, budget int) float64 {
	if len(docs) == 0 {
		return 100.0
	}

	totalTokens := docs.TotalTokens()
	if totalTokens == 0 || budget <= 0 {
		// Zero tokens cannot happen while estimates floor at 1, and the
		// config layer rejects non-positive budgets, but guard both so the
		// ratio below stays finite.
		return 100.0
	}

	// Factor 1: total size relative to budget.
	ratio := float64(totalTokens) / float64(budget)
	var sizeScore float64
	switch {
	case ratio < 0.1:
		sizeScore = 100
	case ratio < 0.3:
		sizeScore = 80
	case ratio < 0.5:
		sizeScore = 60
	case ratio < 0.7:
		sizeScore = 40
	default:
		sizeScore = float64(max(0, 100-int(ratio*100)))
	}

	// Factor 2: redundancy across all documents.
	totalIssues := 0
	for _, d := range docs {
		totalIssues += len(DetectRedundancy(d.Content))
	}
	redundancyScore := float64(max(0, 100-totalIssues*5))

	// Factor 3: document count overhead.
	count := len(docs)
	var countScore float64
	switch {
	case count <= 5:
		countScore = 100
	case count <= 10:
		countScore = 80
	case count <= 20:
		countScore = 60
	default:
		countScore = float64(max(20, 100-count*2))
	}

	return sizeScore*sizeWeight + redundancyScore*redundancyWeight + countScore*countWeight
}
