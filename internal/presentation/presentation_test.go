package presentation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-quality/internal/report"
)

const tidyResume = `Jane Smith
Software Engineer

Experience

- Built data pipelines in Go (2019 – 2023)
- Led a team of four engineers (2017 – 2019)

Education

- MSc Computer Science
`

func TestEvaluateTidyResume(t *testing.T) {
	r := Evaluate(tidyResume, 1)

	byName := map[string]int{}
	for _, d := range r.Dimensions {
		byName[d.Name] = d.Score
	}

	assert.Equal(t, 5, byName["Typography"])
	assert.Equal(t, 5, byName["Consistency"])
	assert.Equal(t, 5, byName["PageLength"])
	assert.Equal(t, 5, byName["ATS"])
	assert.GreaterOrEqual(t, byName["Layout"], 3)
	assert.InDelta(t, float64(r.Total)/25*100, r.Score, 0.05)
}

func TestScoreConsistency(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"single bullet style with en-dash dates", "- one\n- two\n2019 – 2023", 5},
		{"mixed bullet styles", "- one\n• two\n2019 – 2023", 4},
		{"hyphen date ranges only", "- one\n2019 - 2023", 3},
		{"both dash styles", "- one\n2019 – 2023 and 2015 - 2017", 4},
		{"no dates at all", "- one\n- two", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreConsistency(tt.text).Score)
		})
	}
}

func TestScorePageLength(t *testing.T) {
	assert.Equal(t, 5, scorePageLength(1).Score)
	assert.Equal(t, 3, scorePageLength(2).Score)
	assert.Equal(t, 0, scorePageLength(3).Score)
	assert.Equal(t, 0, scorePageLength(0).Score)
}

func TestScoreATS(t *testing.T) {
	assert.Equal(t, 5, scoreATS("plain resume text").Score)
	assert.Equal(t, 0, scoreATS("see <img src=\"photo.png\">").Score)
	assert.Equal(t, 0, scoreATS("portrait at https://example.com/me.png today").Score)
}

func TestScoreTypographyShoutingLines(t *testing.T) {
	// Half the lines are all-caps banners.
	text := "THIS IS A BANNER\nnormal prose line\nANOTHER BANNER\nmore normal prose"
	score := scoreTypography(text).Score
	assert.Equal(t, 3, score)
}

func TestScoreTypographyEmptyText(t *testing.T) {
	assert.Equal(t, 0, scoreTypography("").Score)
}

func TestEvaluateDimensionCount(t *testing.T) {
	r := Evaluate(tidyResume, 1)
	assert.Len(t, r.Dimensions, 5)
	for _, d := range r.Dimensions {
		assert.GreaterOrEqual(t, d.Score, 0)
		assert.LessOrEqual(t, d.Score, 5)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Evaluate(tidyResume, 1))

	out := buf.String()
	assert.Contains(t, out, "Presentation dimension scores & suggestions:")
	assert.Contains(t, out, "Typography")
	assert.True(t, strings.Contains(out, "Presentation Score: "))
	assert.Greater(t, report.ExtractPercent(out, "Presentation Score"), 0.0)
}
