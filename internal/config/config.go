// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Checker
	CheckerURL string `json:"checker_url,omitempty" validate:"omitempty,url"` // LanguageTool-compatible endpoint
	Language   string `json:"language,omitempty"`                             // Checker language code, "auto" to detect

	// Allow-list
	ManualTerms  []string `json:"manual_terms,omitempty"`  // Terms never flagged as errors
	IgnoreRules  []string `json:"ignore_rules,omitempty"`  // Checker rule ids treated as cosmetic
	RegistryFile string   `json:"registry_file,omitempty"` // File of known package/tool names

	// Matching
	JobsCSV string `json:"jobs_csv,omitempty"`               // Path to job listings CSV
	TopK    int    `json:"top_k,omitempty" validate:"gte=0"` // Matches to print

	// Score weights, must sum to 1 when all set
	StructureWeight    float64 `json:"structure_weight,omitempty" validate:"gte=0,lte=1"`
	LanguageWeight     float64 `json:"language_weight,omitempty" validate:"gte=0,lte=1"`
	PresentationWeight float64 `json:"presentation_weight,omitempty" validate:"gte=0,lte=1"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job pages
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// DefaultConfig returns the built-in defaults applied under any loaded file.
func DefaultConfig() Config {
	return Config{
		Language:           "auto",
		TopK:               5,
		StructureWeight:    0.5,
		LanguageWeight:     0.4,
		PresentationWeight: 0.1,
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Weights must form a full distribution once all three are set
	if c.StructureWeight > 0 || c.LanguageWeight > 0 || c.PresentationWeight > 0 {
		sum := c.StructureWeight + c.LanguageWeight + c.PresentationWeight
		if sum < 0.999 || sum > 1.001 {
			return fmt.Errorf("config error: score weights must sum to 1.0, got %.3f", sum)
		}
	}

	// Validate file paths exist (if specified)
	if c.RegistryFile != "" {
		if _, err := os.Stat(c.RegistryFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: registry file not found: %s", c.RegistryFile)
		}
	}

	if c.JobsCSV != "" {
		if _, err := os.Stat(c.JobsCSV); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.JobsCSV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CheckerURL == "" {
		result.CheckerURL = defaults.CheckerURL
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.RegistryFile == "" {
		result.RegistryFile = defaults.RegistryFile
	}
	if result.JobsCSV == "" {
		result.JobsCSV = defaults.JobsCSV
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Slice fields: use default if unset
	if len(result.ManualTerms) == 0 {
		result.ManualTerms = defaults.ManualTerms
	}
	if len(result.IgnoreRules) == 0 {
		result.IgnoreRules = defaults.IgnoreRules
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}

	// Weights are all-or-nothing so a partial override cannot skew the sum
	if result.StructureWeight == 0 && result.LanguageWeight == 0 && result.PresentationWeight == 0 {
		result.StructureWeight = defaults.StructureWeight
		result.LanguageWeight = defaults.LanguageWeight
		result.PresentationWeight = defaults.PresentationWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
