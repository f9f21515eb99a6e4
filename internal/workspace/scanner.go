// Package workspace resolves an agent workspace's context files into a
// document set for analysis.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/cacheforge-ai/cacheforge-skills/internal/analysis"
	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
)

// WellKnownFiles lists the top-level context files scanned in a workspace.
var WellKnownFiles = []string{
	"SKILL.md", "SOUL.md", "MEMORY.md", "AGENTS.md", "TOOLS.md",
	"CLAUDE.md", "SYSTEM.md", "PERSONA.md", "CONTEXT.md", "README.md",
	"INSTRUCTIONS.md",
}

// configDirs are hidden config directories whose markdown files also count
// against the context budget.
var configDirs = []string{".openclaw", ".claude", ".cursor"}

// Scan resolves the known context files under dir into a document set.
// Document names are workspace-relative (e.g. "skills/foo/SKILL.md");
// unreadable individual files are skipped.
func Scan(dir string) (analysis.DocumentSet, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errors.WorkspaceNotFound(dir)
	}

	docs := make(analysis.DocumentSet)

	for _, name := range WellKnownFiles {
		addFile(docs, name, filepath.Join(dir, name))
	}

	// Installed skills: skills/<name>/SKILL.md
	skillsDir := filepath.Join(dir, "skills")
	if entries, err := os.ReadDir(skillsDir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(skillsDir, entry.Name(), "SKILL.md")
			addFile(docs, "skills/"+entry.Name()+"/SKILL.md", path)
		}
	}

	// Markdown files in hidden config directories.
	for _, sub := range configDirs {
		matches, err := filepath.Glob(filepath.Join(dir, sub, "*.md"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			addFile(docs, sub+"/"+filepath.Base(path), path)
		}
	}

	return docs, nil
}

// addFile reads path and records it under name if it is a regular,
// readable file.
func addFile(docs analysis.DocumentSet, name, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	docs[name] = analysis.NewDocument(name, path, string(content))
}
