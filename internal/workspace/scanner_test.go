package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing workspace")
	}
	terr, ok := err.(*errors.ToolkitError)
	if !ok {
		t.Fatalf("expected *errors.ToolkitError, got %T", err)
	}
	if terr.Code != errors.ErrWorkspaceNotFound {
		t.Errorf("code = %s, want %s", terr.Code, errors.ErrWorkspaceNotFound)
	}
}

func TestScan_FileNotDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, path, "not a directory")
	if _, err := Scan(path); err == nil {
		t.Fatal("expected error when workspace path is a file")
	}
}

func TestScan_EmptyWorkspace(t *testing.T) {
	docs, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected empty set, got %d documents", len(docs))
	}
}

func TestScan_WellKnownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "SOUL.md"), "You are a careful assistant.")
	writeFile(t, filepath.Join(dir, "MEMORY.md"), "User prefers terse replies.")
	writeFile(t, filepath.Join(dir, "notes.md"), "not a well-known name")

	docs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	soul, ok := docs["SOUL.md"]
	if !ok {
		t.Fatal("SOUL.md not scanned")
	}
	if soul.Content != "You are a careful assistant." {
		t.Errorf("unexpected content %q", soul.Content)
	}
	if soul.Tokens != 7 {
		t.Errorf("tokens = %d, want 7", soul.Tokens)
	}
	if soul.Path != filepath.Join(dir, "SOUL.md") {
		t.Errorf("path = %q", soul.Path)
	}
	if _, ok := docs["notes.md"]; ok {
		t.Error("notes.md should not be scanned")
	}
}

func TestScan_Skills(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "skills", "git", "SKILL.md"), "How to use git well.")
	writeFile(t, filepath.Join(dir, "skills", "web", "SKILL.md"), "How to browse the web.")
	// A stray file directly under skills/ is not a skill.
	writeFile(t, filepath.Join(dir, "skills", "README.md"), "about skills")
	// A skill dir without SKILL.md contributes nothing.
	if err := os.MkdirAll(filepath.Join(dir, "skills", "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	docs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d: %v", len(docs), docs)
	}
	for _, name := range []string{"skills/git/SKILL.md", "skills/web/SKILL.md"} {
		if _, ok := docs[name]; !ok {
			t.Errorf("%s not scanned", name)
		}
	}
}

func TestScan_ConfigDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".claude", "settings.md"), "claude settings")
	writeFile(t, filepath.Join(dir, ".openclaw", "rules.md"), "house rules")
	writeFile(t, filepath.Join(dir, ".claude", "data.json"), "{}")

	docs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if _, ok := docs[".claude/settings.md"]; !ok {
		t.Error(".claude/settings.md not scanned")
	}
	if _, ok := docs[".openclaw/rules.md"]; !ok {
		t.Error(".openclaw/rules.md not scanned")
	}
}

func TestScan_DirectoryNamedLikeFile(t *testing.T) {
	dir := t.TempDir()
	// A directory named SOUL.md must be skipped, not read.
	if err := os.MkdirAll(filepath.Join(dir, "SOUL.md"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "MEMORY.md"), "real file")

	docs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if _, ok := docs["SOUL.md"]; ok {
		t.Error("directory SOUL.md should be skipped")
	}
	if _, ok := docs["MEMORY.md"]; !ok {
		t.Error("MEMORY.md not scanned")
	}
}
