// Package snapshot persists analysis summaries for before/after comparison.
package snapshot

import (
	"encoding/json"
	"os"

	"github.com/cacheforge-ai/cacheforge-skills/internal/analysis"
	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
)

// FileEntry records one document's token cost at snapshot time.
type FileEntry struct {
	Tokens int    `json:"tokens"`
	Path   string `json:"path"`
}

// Snapshot is the persisted summary of one analysis run. Snapshots are
// immutable once written and only ever compared, never merged.
type Snapshot struct {
	Workspace   string               `json:"workspace,omitempty"`
	TotalTokens int                  `json:"total_tokens"`
	Budget      int                  `json:"budget"`
	Efficiency  float64              `json:"efficiency"`
	Files       map[string]FileEntry `json:"files"`
	IssuesCount int                  `json:"issues_count"`
}

// FromReport builds a snapshot from an analysis report.
func FromReport(workspace string, r *analysis.Report) *Snapshot {
	files := make(map[string]FileEntry, len(r.Documents))
	for _, doc := range r.Documents {
		files[doc.Name] = FileEntry{Tokens: doc.Tokens, Path: doc.Path}
	}
	return &Snapshot{
		Workspace:   workspace,
		TotalTokens: r.TotalTokens,
		Budget:      r.Budget,
		Efficiency:  r.Efficiency,
		Files:       files,
		IssuesCount: r.IssueCount(),
	}
}

// Save writes the snapshot as indented JSON.
func Save(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a snapshot from disk. Failure here aborts the caller: a diff
// with a missing or corrupt side is meaningless.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SnapshotUnreadable(path, err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.SnapshotUnreadable(path, err)
	}
	return &s, nil
}
