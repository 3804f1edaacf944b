package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchJobsCommand_MissingSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match-jobs", "--file", "resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --jobs or --job-url must be provided")
}

func TestMatchJobsCommand_MutuallyExclusiveSources(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match-jobs",
		"--file", "resume.txt", "--jobs", "jobs.csv", "--job-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestMatchJobsCommand_RanksFromCSV(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobsPath := filepath.Join(tmpDir, "jobs.csv")

	resume := "Backend engineer with Go and PostgreSQL experience building APIs."
	jobs := "title,description\n" +
		"Backend Engineer,Build APIs in Go with PostgreSQL\n" +
		"Florist,Arrange flowers for weddings\n"
	require.NoError(t, os.WriteFile(resumePath, []byte(resume), 0o644))
	require.NoError(t, os.WriteFile(jobsPath, []byte(jobs), 0o644))

	cmd := exec.Command(binaryPath, "match-jobs", "--file", resumePath, "--jobs", jobsPath, "--top", "1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "Backend Engineer")
	assert.NotContains(t, string(output), "Florist")
}

func TestMatchJobsCommand_VerbosePrintsMatchBox(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	jobsPath := filepath.Join(tmpDir, "jobs.csv")

	require.NoError(t, os.WriteFile(resumePath, []byte("Go engineer building APIs."), 0o644))
	require.NoError(t, os.WriteFile(jobsPath, []byte("title,description\nGo Engineer,Build APIs in Go\n"), 0o644))

	cmd := exec.Command(binaryPath, "match-jobs", "--file", resumePath, "--jobs", jobsPath, "-v")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "TOP JOB MATCHES")
}
