package config

import (
	"os"
	"path/filepath"

	"github.com/cacheforge-ai/cacheforge-skills/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the toolkit configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Workspace is the default agent workspace directory to analyze.
	Workspace string `yaml:"workspace,omitempty"`

	// ToolConfig is the default tool/function config file for audits.
	ToolConfig string `yaml:"tool_config,omitempty"`

	// Budget is the default context window token budget.
	Budget int `yaml:"budget,omitempty"`

	// Model resolves the budget from a known context window when Budget
	// is unset.
	Model string `yaml:"model,omitempty"`
}

// Default values.
const DefaultVersion = 1

// DefaultFileMode is the permission mode for files the toolkit writes.
const DefaultFileMode = 0644

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault returns the config file if present, or a defaulted config
// when none exists. Analysis commands work without a config file.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return cfg
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, DefaultFileMode)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	if c.Budget < 0 {
		return errors.ConfigInvalid("budget must be positive")
	}
	if c.Model != "" {
		if _, ok := BudgetForModel(c.Model); !ok {
			return errors.ConfigInvalid("unknown model: " + c.Model)
		}
	}
	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	home := os.Getenv("HOME")
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Workspace == "" {
		c.Workspace = filepath.Join(home, ".openclaw", "workspace")
	}
	if c.ToolConfig == "" {
		c.ToolConfig = filepath.Join(home, ".openclaw", "openclaw.json")
	}
	if c.Budget == 0 {
		if budget, ok := BudgetForModel(c.Model); ok {
			c.Budget = budget
		} else {
			c.Budget = DefaultBudget
		}
	}
}
