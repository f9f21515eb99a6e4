// Package config handles cacheforge toolkit configuration.
package config

import (
	"os"
	"path/filepath"
)

// Paths provides all toolkit-related filesystem paths.
type Paths struct {
	ConfigDir   string // ~/.config/cacheforge
	CacheDir    string // ~/.cache/cacheforge
	ConfigFile  string // ~/.config/cacheforge/config.yaml
	SnapshotDir string // ~/.cache/cacheforge/snapshots
}

// NewPaths creates Paths using ~/.config and ~/.cache directories.
// We use these paths explicitly for cross-platform consistency rather than
// platform-specific defaults.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(
		filepath.Join(home, ".config", "cacheforge"),
		filepath.Join(home, ".cache", "cacheforge"),
	)
}

// NewPathsWithOverrides allows overriding directories for testing.
func NewPathsWithOverrides(configDir, cacheDir string) *Paths {
	return &Paths{
		ConfigDir:   configDir,
		CacheDir:    cacheDir,
		ConfigFile:  filepath.Join(configDir, "config.yaml"),
		SnapshotDir: filepath.Join(cacheDir, "snapshots"),
	}
}

// SnapshotFile returns the default path for a named snapshot.
func (p *Paths) SnapshotFile(name string) string {
	return filepath.Join(p.SnapshotDir, name+".json")
}
