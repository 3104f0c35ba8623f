// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ResumesDir string `json:"resumes_dir,omitempty"` // Root directory scanned for variant subdirectories
	EngineDir  string `json:"engine_dir,omitempty"`  // Directory holding the shared document templates and styles
	SiteDir    string `json:"site_dir,omitempty"`    // Publish directory for the static site
	AuditDir   string `json:"audit_dir,omitempty"`   // Directory for audit captures and reports

	// Compiler
	Compiler              string `json:"compiler,omitempty"`                // Typesetting binary (pdflatex, tectonic, ...)
	CompileTimeoutSeconds int    `json:"compile_timeout_seconds,omitempty"` // Bounded wait per compiler invocation

	// Behavior
	ContinueOnError bool `json:"continue_on_error,omitempty"` // Keep building remaining variants after a failure
	Verbose         bool `json:"verbose,omitempty"`           // Print detailed per-variant information
}

// DefaultConfig returns the built-in defaults matching the repository layout.
func DefaultConfig() Config {
	return Config{
		ResumesDir:            "resumes",
		EngineDir:             "engine",
		SiteDir:               "site",
		AuditDir:              "audit",
		Compiler:              "pdflatex",
		CompileTimeoutSeconds: 60,
	}
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.CompileTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'compile_timeout_seconds' must be non-negative")
	}

	// Validate directories exist if explicitly specified
	if c.ResumesDir != "" {
		if _, err := os.Stat(c.ResumesDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resumes directory not found: %s", c.ResumesDir)
		}
	}
	if c.EngineDir != "" {
		if _, err := os.Stat(c.EngineDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: engine directory not found: %s", c.EngineDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ResumesDir == "" {
		result.ResumesDir = defaults.ResumesDir
	}
	if result.EngineDir == "" {
		result.EngineDir = defaults.EngineDir
	}
	if result.SiteDir == "" {
		result.SiteDir = defaults.SiteDir
	}
	if result.AuditDir == "" {
		result.AuditDir = defaults.AuditDir
	}
	if result.Compiler == "" {
		result.Compiler = defaults.Compiler
	}

	// Int fields: use default if zero
	if result.CompileTimeoutSeconds == 0 {
		result.CompileTimeoutSeconds = defaults.CompileTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// BoolFromEnv reports whether an environment variable holds a truthy value.
// Recognized: 1, true, yes, on (case-insensitive). Anything else is false.
func BoolFromEnv(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
