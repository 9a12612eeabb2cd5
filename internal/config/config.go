// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultFuzzyThreshold = 0.8
	DefaultPort           = 8080
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Scoring
	TechnicalWeight  float64 `json:"technical_weight,omitempty"`   // Weight for technical skills (0.0-1.0)
	SoftSkillsWeight float64 `json:"soft_skills_weight,omitempty"` // Weight for soft skills (0.0-1.0)

	// Matching
	FuzzyThreshold float64 `json:"fuzzy_threshold,omitempty"` // Minimum similarity for fuzzy matches (0.0-1.0)

	// Server
	Port int `json:"port,omitempty"` // HTTP server port

	// Behavior
	Verbose bool   `json:"verbose,omitempty"` // Print detailed analysis breakdown
	Output  string `json:"output,omitempty"`  // Path to write the report JSON (default stdout)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Weight-sum
// validation is deferred to the fit score calculator, which owns the
// epsilon; this catches only structurally impossible values.
func (c *Config) Validate() error {
	if c.TechnicalWeight < 0 || c.TechnicalWeight > 1 {
		return fmt.Errorf("config error: 'technical_weight' must be between 0 and 1")
	}
	if c.SoftSkillsWeight < 0 || c.SoftSkillsWeight > 1 {
		return fmt.Errorf("config error: 'soft_skills_weight' must be between 0 and 1")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 1")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TechnicalWeight == 0 {
		result.TechnicalWeight = defaults.TechnicalWeight
	}
	if result.SoftSkillsWeight == 0 {
		result.SoftSkillsWeight = defaults.SoftSkillsWeight
	}

	if result.FuzzyThreshold == 0 {
		if defaults.FuzzyThreshold > 0 {
			result.FuzzyThreshold = defaults.FuzzyThreshold
		} else {
			result.FuzzyThreshold = DefaultFuzzyThreshold
		}
	}

	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
