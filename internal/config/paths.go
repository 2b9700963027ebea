// Package config manages studyplan configuration and filesystem paths.
//
// Configuration is read from environment variables. The default root is
// ~/.studyplan/ and the default plan file is studieplan.json inside it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultPlanFileName is the plan file used when none is configured.
const DefaultPlanFileName = "studieplan.json"

// Config holds the environment settings.
type Config struct {
	// Root overrides the data directory (default: ~/.studyplan)
	Root string `env:"STUDYPLAN_ROOT"`

	// PlanFile overrides the plan file (default: <root>/studieplan.json)
	PlanFile string `env:"STUDYPLAN_FILE"`
}

// Paths contains all the filesystem paths used by studyplan.
type Paths struct {
	// Root is the base directory for studyplan data
	Root string

	// PlanFile is the JSON document holding courses and the plan
	PlanFile string
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DefaultPaths returns the default paths for studyplan.
// Paths can be overridden with environment variables:
// - STUDYPLAN_ROOT: Override the root directory
// - STUDYPLAN_FILE: Override the plan file
func DefaultPaths() (*Paths, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Paths()
}

// Paths resolves the configured paths, filling in defaults.
func (c *Config) Paths() (*Paths, error) {
	root := c.Root
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".studyplan")
	}

	planFile := c.PlanFile
	if planFile == "" {
		planFile = filepath.Join(root, DefaultPlanFileName)
	}

	return &Paths{
		Root:     root,
		PlanFile: planFile,
	}, nil
}

// WithPlanFile returns a copy of p using the given plan file.
// An empty path leaves the plan file unchanged.
func (p Paths) WithPlanFile(path string) Paths {
	if path != "" {
		p.PlanFile = path
	}
	return p
}

// EnsureDirectories creates the directories holding the plan file.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		filepath.Dir(p.PlanFile),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
