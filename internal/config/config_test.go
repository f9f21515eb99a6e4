package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
)

func TestLoadFrom_NotFound(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)

	var terr *errors.ToolkitError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, errors.ErrConfigNotFound, terr.Code)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)

	var terr *errors.ToolkitError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, errors.ErrConfigInvalid, terr.Code)
}

func TestLoadFrom_AppliesDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/home/tester/.openclaw/workspace", cfg.Workspace)
	assert.Equal(t, "/home/tester/.openclaw/openclaw.json", cfg.ToolConfig)
	assert.Equal(t, DefaultBudget, cfg.Budget)
}

func TestLoadFrom_ModelResolvesBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 128_000, cfg.Budget)
}

func TestLoadFrom_ExplicitBudgetWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-4o\nbudget: 50000\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 50000, cfg.Budget)
}

func TestLoadFrom_UnknownModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gpt-99\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model")
}

func TestLoadFrom_NegativeBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget: -5\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget must be positive")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{Workspace: "/ws", Budget: 100_000}
	require.NoError(t, SaveTo(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/ws", loaded.Workspace)
	assert.Equal(t, 100_000, loaded.Budget)
	assert.Equal(t, DefaultVersion, loaded.Version)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := LoadOrDefault()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, DefaultBudget, cfg.Budget)
	assert.NotEmpty(t, cfg.Workspace)
}

func TestPaths(t *testing.T) {
	p := NewPathsWithOverrides("/cfg", "/cache")
	assert.Equal(t, "/cfg/config.yaml", p.ConfigFile)
	assert.Equal(t, "/cache/snapshots", p.SnapshotDir)
	assert.Equal(t, "/cache/snapshots/before.json", p.SnapshotFile("before"))
}

func TestNewPaths_UsesHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	p := NewPaths()
	assert.Equal(t, "/home/tester/.config/cacheforge/config.yaml", p.ConfigFile)
	assert.Equal(t, "/home/tester/.cache/cacheforge", p.CacheDir)
}

func TestBudgetForModel(t *testing.T) {
	budget, ok := BudgetForModel("claude-3.5-sonnet")
	assert.True(t, ok)
	assert.Equal(t, 200_000, budget)

	_, ok = BudgetForModel("nonexistent-model")
	assert.False(t, ok)

	assert.Len(t, KnownModels(), 7)
}
