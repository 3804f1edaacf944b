package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--file is required")
}

func TestScoreCommand_BadConfigPath(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--file", "resume.txt", "--config", "/nonexistent/config.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}

func TestScoreCommand_InvalidWeightsInConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	cfg := `{"structure_weight": 0.9, "language_weight": 0.9, "presentation_weight": 0.1}`
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o644))

	cmd := exec.Command(binaryPath, "score", "--file", "resume.txt", "--config", configPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "must sum to 1.0")
}
