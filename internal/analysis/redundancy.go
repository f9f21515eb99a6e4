package analysis

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// IssueKind identifies the type of redundancy issue.
type IssueKind string

const (
	IssueDuplicateLine       IssueKind = "Duplicate line"
	IssueRepeatedPhrase      IssueKind = "Repeated phrase"
	IssueExcessiveWhitespace IssueKind = "Excessive whitespace"
	IssueLongLines           IssueKind = "Long lines"
)

// Issue describes one redundancy finding within a single document.
type Issue struct {
	Kind   IssueKind
	Detail string
}

// Redundancy detection thresholds.
const (
	dupLineMinLen    = 20  // stripped lines at or under this are ignored
	trigramMinLen    = 15  // joined trigrams at or under this are ignored
	trigramMinCount  = 3   // occurrences required to flag a phrase
	phraseIssueCap   = 10  // shared cap across duplicate-line + phrase issues
	longLineLen      = 200 // chars before a line counts as long
	longLineMinCount = 3   // long lines required before flagging
)

// DetectRedundancy scans one document's text for duplicate lines, repeated
// phrases, excessive blank lines, and overlong lines. It never fails; any
// input yields zero or more issues. Issues are grouped by kind in the order
// detected: duplicates, phrases, whitespace, long lines.
func DetectRedundancy(text string) []Issue {
	var issues []Issue
	lines := strings.Split(text, "\n")

	// Duplicate lines. Short lines are skipped so trivial repeats (blanks,
	// single words, closing braces) are not flagged.
	seen := make(map[string]int)
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if utf8.RuneCountInString(stripped) <= dupLineMinLen {
			continue
		}
		if first, ok := seen[stripped]; ok {
			issues = append(issues, Issue{
				Kind:   IssueDuplicateLine,
				Detail: fmt.Sprintf("Line %d duplicates line %d", i+1, first+1),
			})
		} else {
			seen[stripped] = i
		}
	}

	// Repeated phrases: 3-word sequences appearing 3+ times. Trigrams are
	// counted in first-seen order so the descending-count sort is stable
	// across runs.
	words := strings.Fields(strings.ToLower(text))
	counts := make(map[string]int)
	var order []string
	for i := 0; i+2 < len(words); i++ {
		tri := strings.Join(words[i:i+3], " ")
		if utf8.RuneCountInString(tri) <= trigramMinLen {
			continue
		}
		if counts[tri] == 0 {
			order = append(order, tri)
		}
		counts[tri]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for _, tri := range order {
		if counts[tri] < trigramMinCount {
			continue
		}
		issues = append(issues, Issue{
			Kind:   IssueRepeatedPhrase,
			Detail: fmt.Sprintf("%q appears %d times", tri, counts[tri]),
		})
		if len(issues) >= phraseIssueCap {
			break
		}
	}

	// Excessive whitespace.
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
		}
	}
	if float64(blanks) > float64(len(lines))*0.3 && blanks > 5 {
		issues = append(issues, Issue{
			Kind:   IssueExcessiveWhitespace,
			Detail: fmt.Sprintf("%d blank lines (%d%% of file)", blanks, blanks*100/len(lines)),
		})
	}

	// Very long lines that could be compressed.
	longLines := 0
	for _, line := range lines {
		if utf8.RuneCountInString(line) > longLineLen {
			longLines++
		}
	}
	if longLines > longLineMinCount {
		issues = append(issues, Issue{
			Kind:   IssueLongLines,
			Detail: fmt.Sprintf("%d lines exceed %d chars, consider splitting", longLines, longLineLen),
		})
	}

	return issues
}
