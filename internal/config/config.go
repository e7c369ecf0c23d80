// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variables recognized by FromEnv. Values from a .env file are
// visible here once the entry point has loaded it.
const (
	EnvOutputDir = "FORGE_OUTPUT_DIR"
	EnvRules     = "FORGE_RULES"
	EnvPort      = "PORT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir,omitempty"` // Directory to write the generated extension into
	Rules     string `json:"rules,omitempty"`      // Path to a YAML file overriding the built-in rule tables

	// Behavior
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
	SkipVerify bool `json:"skip_verify,omitempty"` // Skip post-write bundle verification

	// Server
	Port int `json:"port,omitempty"` // HTTP server port
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

// FromEnv builds a Config from environment variables. Unset or malformed
// values leave the corresponding field zero, so env values sit below flags
// and the config file in the merge order.
func FromEnv() Config {
	cfg := Config{
		OutputDir: os.Getenv(EnvOutputDir),
		Rules:     os.Getenv(EnvRules),
	}
	if raw := os.Getenv(EnvPort); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Rules != "" {
		if _, err := os.Stat(c.Rules); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.Rules)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Rules == "" {
		result.Rules = defaults.Rules
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
