package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-quality/internal/schemas"
)

func TestScoreReportSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("score_report.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestScoreReportSchema_AcceptsCompleteReport(t *testing.T) {
	schema, err := os.ReadFile("score_report.schema.json")
	require.NoError(t, err)

	report := `{
		"run_id": "550e8400-e29b-41d4-a716-446655440000",
		"source": "resume.pdf",
		"structure_score": 75.0,
		"language_score": 90.0,
		"presentation_score": 80.0,
		"overall_score": 81.5,
		"language": {
			"word_count": 200,
			"error_count": 4,
			"errors_per_100_words": 2.0,
			"quality_score": 90.0
		}
	}`

	assert.NoError(t, schemas.ValidateJSONString(string(schema), report))
}

func TestScoreReportSchema_RejectsMissingScores(t *testing.T) {
	schema, err := os.ReadFile("score_report.schema.json")
	require.NoError(t, err)

	report := `{"run_id": "abc", "source": "resume.pdf"}`

	assert.Error(t, schemas.ValidateJSONString(string(schema), report))
}

func TestScoreReportSchema_RejectsUnknownFields(t *testing.T) {
	schema, err := os.ReadFile("score_report.schema.json")
	require.NoError(t, err)

	report := `{
		"run_id": "abc",
		"source": "resume.pdf",
		"structure_score": 75.0,
		"language_score": 90.0,
		"presentation_score": 80.0,
		"overall_score": 81.5,
		"surprise": true
	}`

	assert.Error(t, schemas.ValidateJSONString(string(schema), report))
}
