package snapshot

import "sort"

// FileChange is one document whose token count differs between snapshots.
// A document absent from one side counts as zero tokens there.
type FileChange struct {
	Name   string
	Before int
	After  int
}

// Delta returns tokens saved for this document (negative = grew).
func (c FileChange) Delta() int {
	return c.Before - c.After
}

// DiffReport carries the structural comparison of two snapshots.
type DiffReport struct {
	TokensBefore     int
	TokensAfter      int
	EfficiencyBefore float64
	EfficiencyAfter  float64
	IssuesBefore     int
	IssuesAfter      int
	Changes          []FileChange // biggest savings first
}

// Saved returns the token delta; positive means tokens were saved.
func (d *DiffReport) Saved() int {
	return d.TokensBefore - d.TokensAfter
}

// SavedPct returns the token delta as a percentage of the before total,
// 0 when the before snapshot had no tokens.
func (d *DiffReport) SavedPct() float64 {
	if d.TokensBefore == 0 {
		return 0
	}
	return float64(d.Saved()) / float64(d.TokensBefore) * 100
}

// EfficiencyDelta returns the efficiency change; positive = improvement.
func (d *DiffReport) EfficiencyDelta() float64 {
	return d.EfficiencyAfter - d.EfficiencyBefore
}

// IssuesFixed returns the issue delta; positive = issues resolved.
func (d *DiffReport) IssuesFixed() int {
	return d.IssuesBefore - d.IssuesAfter
}

// Diff compares two snapshots structurally. The per-document change list
// covers every name present in either snapshot where the token counts
// differ, sorted by descending savings.
func Diff(before, after *Snapshot) *DiffReport {
	report := &DiffReport{
		TokensBefore:     before.TotalTokens,
		TokensAfter:      after.TotalTokens,
		EfficiencyBefore: before.Efficiency,
		EfficiencyAfter:  after.Efficiency,
		IssuesBefore:     before.IssuesCount,
		IssuesAfter:      after.IssuesCount,
	}

	names := make(map[string]bool)
	for name := range before.Files {
		names[name] = true
	}
	for name := range after.Files {
		names[name] = true
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	for _, name := range ordered {
		bt := before.Files[name].Tokens
		at := after.Files[name].Tokens
		if bt != at {
			report.Changes = append(report.Changes, FileChange{Name: name, Before: bt, After: at})
		}
	}
	sort.SliceStable(report.Changes, func(i, j int) bool {
		return report.Changes[i].Delta() > report.Changes[j].Delta()
	})

	return report
}
