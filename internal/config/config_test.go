package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"checker_url": "https://lt.example.com/v2/check",
		"language": "en-US",
		"manual_terms": ["FooScale", "BarDB"],
		"top_k": 3,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://lt.example.com/v2/check", cfg.CheckerURL)
	assert.Equal(t, "en-US", cfg.Language)
	assert.Equal(t, []string{"FooScale", "BarDB"}, cfg.ManualTerms)
	assert.Equal(t, 3, cfg.TopK)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadCheckerURL(t *testing.T) {
	cfg := &Config{
		CheckerURL: "not a url",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CheckerURL")
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := &Config{
		StructureWeight:    0.5,
		LanguageWeight:     0.4,
		PresentationWeight: 0.3,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "weights must sum to 1.0")
}

func TestValidate_RegistryFileMissing(t *testing.T) {
	cfg := &Config{
		RegistryFile: filepath.Join(t.TempDir(), "missing.txt"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "registry file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		CheckerURL:         "https://lt.example.com/v2/check",
		Language:           "en-US",
		StructureWeight:    0.5,
		LanguageWeight:     0.4,
		PresentationWeight: 0.1,
		TopK:               5,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 1.0, cfg.StructureWeight+cfg.LanguageWeight+cfg.PresentationWeight, 1e-9)
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, 5, cfg.TopK)
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Language:           "auto",
		JobsCSV:            "jobs.csv",
		ManualTerms:        []string{"FooScale"},
		TopK:               5,
		StructureWeight:    0.5,
		LanguageWeight:     0.4,
		PresentationWeight: 0.1,
	}

	partial := Config{
		Language:   "en-GB",
		CheckerURL: "https://lt.example.com/v2/check",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "en-GB", merged.Language)
	assert.Equal(t, "https://lt.example.com/v2/check", merged.CheckerURL)

	// Default values should fill in empty fields
	assert.Equal(t, "jobs.csv", merged.JobsCSV)
	assert.Equal(t, []string{"FooScale"}, merged.ManualTerms)
	assert.Equal(t, 5, merged.TopK)
	assert.InDelta(t, 0.5, merged.StructureWeight, 1e-9)
}

func TestMergeWithDefaults_PartialWeightsNotMerged(t *testing.T) {
	defaults := DefaultConfig()
	partial := Config{StructureWeight: 0.7, LanguageWeight: 0.3}

	merged := partial.MergeWithDefaults(defaults)

	// A caller-provided weight split is kept as-is
	assert.InDelta(t, 0.7, merged.StructureWeight, 1e-9)
	assert.InDelta(t, 0.3, merged.LanguageWeight, 1e-9)
	assert.InDelta(t, 0.0, merged.PresentationWeight, 1e-9)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Language: "en-US",
		TopK:     7,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "en-US", merged.Language)
	assert.Equal(t, 7, merged.TopK)
}
