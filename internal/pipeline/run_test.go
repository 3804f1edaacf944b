package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-quality/internal/config"
	"github.com/jonathan/cv-quality/internal/types"
)

// fakeChecker returns canned matches without calling any remote service.
type fakeChecker struct {
	matches []types.IssueMatch
	err     error
}

func (f *fakeChecker) Check(_ context.Context, _ string) ([]types.IssueMatch, error) {
	return f.matches, f.err
}

func intPtr(i int) *int { return &i }

const sampleResume = `John Doe
john.doe@example.com

EXPERIENCE
- Led a team of five engineers building payment services.
- Reduced deployment time by forty percent.

EDUCATION
Bachelor of Science in Computer Science, State University

SKILLS
Go, PostgreSQL, Kubernetes
`

func writeTempResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))
	return path
}

func TestRunPipeline_AggregatesAllComponents(t *testing.T) {
	var buf bytes.Buffer
	result, err := RunPipeline(context.Background(), RunOptions{
		Source:  writeTempResume(t),
		Config:  config.DefaultConfig(),
		Checker: &fakeChecker{},
		Output:  &buf,
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	report := result.Report
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 100.0, report.StructureScore, "all essential sections are present")
	assert.Equal(t, 100.0, report.LanguageScore, "no issues were reported")
	require.NotNil(t, report.Structure)
	require.NotNil(t, report.Language)
	require.NotNil(t, report.Presentation)

	expected := report.StructureScore*0.5 + report.LanguageScore*0.4 + report.PresentationScore*0.1
	assert.InDelta(t, expected, report.OverallScore, 0.05)
}

func TestRunPipeline_LanguageIssuesLowerTheScore(t *testing.T) {
	ruleID := "MORFOLOGIK_RULE_EN_US"
	checker := &fakeChecker{matches: []types.IssueMatch{
		{Offset: 17, Length: intPtr(4), RuleID: &ruleID},
		{Offset: 30, Length: intPtr(9), RuleID: &ruleID},
	}}

	var buf bytes.Buffer
	result, err := RunPipeline(context.Background(), RunOptions{
		Source:  writeTempResume(t),
		Config:  config.DefaultConfig(),
		Checker: checker,
		Output:  &buf,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Report.Language.ErrorCount)
	assert.Less(t, result.Report.LanguageScore, 100.0)
	assert.Len(t, result.Issues, 2)
}

func TestRunPipeline_CheckerFailureScoresZeroLanguage(t *testing.T) {
	var buf bytes.Buffer
	result, err := RunPipeline(context.Background(), RunOptions{
		Source:  writeTempResume(t),
		Config:  config.DefaultConfig(),
		Checker: &fakeChecker{err: errors.New("service unavailable")},
		Output:  &buf,
	})

	require.NoError(t, err, "a failed check downgrades the score instead of aborting")
	assert.Equal(t, 0.0, result.Report.LanguageScore)
	assert.Nil(t, result.Report.Language)
	assert.Contains(t, buf.String(), "Warning: language check failed")

	// Structure and presentation still contribute their share.
	expected := result.Report.StructureScore*0.5 + result.Report.PresentationScore*0.1
	assert.InDelta(t, expected, result.Report.OverallScore, 0.05)
}

func TestRunPipeline_MissingSourceFails(t *testing.T) {
	_, err := RunPipeline(context.Background(), RunOptions{
		Source:  filepath.Join(t.TempDir(), "nope.txt"),
		Config:  config.DefaultConfig(),
		Checker: &fakeChecker{},
	})

	assert.Error(t, err)
}

func TestReadDocument_PlainTextIsOnePage(t *testing.T) {
	path := writeTempResume(t)

	doc, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)
	assert.Contains(t, doc.Text, "EXPERIENCE")
}
