package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-quality/internal/allowlist"
	"github.com/jonathan/cv-quality/internal/types"
)

func TestScore(t *testing.T) {
	twoHundredWords := strings.TrimSpace(strings.Repeat("word ", 200))

	tests := []struct {
		name            string
		text            string
		errorCount      int
		expectedWords   int
		expectedPer100  float64
		expectedQuality float64
	}{
		{
			name:            "typical density",
			text:            twoHundredWords,
			errorCount:      4,
			expectedWords:   200,
			expectedPer100:  2.0,
			expectedQuality: 90.0,
		},
		{
			name:            "clean text",
			text:            "ten green bottles hanging on the wall",
			errorCount:      0,
			expectedWords:   7,
			expectedPer100:  0,
			expectedQuality: 100,
		},
		{
			name:            "score floors at zero",
			text:            "one two",
			errorCount:      10,
			expectedWords:   2,
			expectedPer100:  500,
			expectedQuality: 0,
		},
		{
			name:            "empty text",
			text:            "",
			errorCount:      3,
			expectedWords:   0,
			expectedPer100:  0,
			expectedQuality: 100,
		},
		{
			name:            "punctuation only",
			text:            "... --- !!!",
			errorCount:      0,
			expectedWords:   0,
			expectedPer100:  0,
			expectedQuality: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Score(tt.text, tt.errorCount)
			assert.Equal(t, tt.expectedWords, report.WordCount)
			assert.Equal(t, tt.errorCount, report.ErrorCount)
			assert.InDelta(t, tt.expectedPer100, report.ErrorsPer100Words, 1e-9)
			assert.InDelta(t, tt.expectedQuality, report.QualityScore, 1e-9)
		})
	}
}

func TestFilterAndScore(t *testing.T) {
	text := "This sentence has recieve in it today"
	matches := []types.IssueMatch{
		match(0, 4, "UPPERCASE_SENTENCE_START"),
		match(18, 7, "MORFOLOGIK_RULE_EN_US"),
	}

	kept, report := FilterAndScore(text, matches, nil, allowlist.AllowList{})
	assert.Len(t, kept, 1)
	assert.Equal(t, 7, report.WordCount)
	assert.Equal(t, 1, report.ErrorCount)
}
