// Package config handles loading and managing rockscore configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for rockscore.
type Config struct {
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Clustering ClusteringConfig `yaml:"clustering"`
	// Dictionary is an optional path to a YAML code dictionary table.
	// Empty means the built-in defaults.
	Dictionary string `yaml:"dictionary"`
}

// AnalysisConfig controls the RMR14 scoring inputs.
type AnalysisConfig struct {
	UCSClass           string  `yaml:"ucs_class"`
	OrientationPenalty float64 `yaml:"orientation_penalty"`
}

// ClusteringConfig controls family formation.
type ClusteringConfig struct {
	ToleranceDeg float64 `yaml:"tolerance_deg"`
	MinMembers   int     `yaml:"min_members"`
	Metric       string  `yaml:"metric"` // two-threshold or combined
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			UCSClass:           "R4",
			OrientationPenalty: -5,
		},
		Clustering: ClusteringConfig{
			ToleranceDeg: 15,
			MinMembers:   3,
			Metric:       "two-threshold",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .rockscore/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".rockscore", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
