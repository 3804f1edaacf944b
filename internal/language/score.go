package language

import (
	"regexp"

	"github.com/jonathan/cv-quality/internal/allowlist"
	"github.com/jonathan/cv-quality/internal/types"
)

// errorWeight is how many quality points each error per 100 words costs.
const errorWeight = 5.0

var wordPattern = regexp.MustCompile(`\w+`)

// Score computes the error density and quality score for a document with
// the given number of surviving issues.
func Score(text string, errorCount int) types.ScoredReport {
	wordCount := len(wordPattern.FindAllStringIndex(text, -1))

	var errorsPer100 float64
	if wordCount > 0 {
		errorsPer100 = float64(errorCount) / float64(wordCount) * 100
	}

	quality := 100 - errorWeight*errorsPer100
	if quality < 0 {
		quality = 0
	}

	return types.ScoredReport{
		WordCount:         wordCount,
		ErrorCount:        errorCount,
		ErrorsPer100Words: errorsPer100,
		QualityScore:      quality,
	}
}

// FilterAndScore applies Filter and scores whatever survives.
func FilterAndScore(text string, matches []types.IssueMatch, ignoreRules map[string]struct{}, allowed allowlist.AllowList) ([]types.IssueMatch, types.ScoredReport) {
	kept := Filter(text, matches, ignoreRules, allowed)
	return kept, Score(text, len(kept))
}
