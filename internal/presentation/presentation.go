// Package presentation scores the visual quality of a résumé from its
// extracted text and page count. Five dimensions are rated 0 to 5 and
// the sum is scaled to a 0 to 100 score.
package presentation

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/cv-quality/internal/types"
)

const (
	maxPerDimension = 5
	dimensionCount  = 5
	maxLineLength   = 110
)

var (
	bulletPattern     = regexp.MustCompile(`(?m)^[-•]\s`)
	enDashRange       = regexp.MustCompile(`\d{4}\s*–\s*\d{4}`)
	hyphenRange       = regexp.MustCompile(`\d{4}\s*-\s*\d{4}`)
	imageMarkup       = regexp.MustCompile(`<img|https?://\S+\.(png|jpg|jpeg|svg)`)
	lowercaseSequence = regexp.MustCompile(`[a-z]`)
)

// Evaluate rates the document across all dimensions.
func Evaluate(text string, pages int) types.PresentationReport {
	dims := []types.DimensionScore{
		scoreTypography(text),
		scoreLayout(text),
		scoreConsistency(text),
		scorePageLength(pages),
		scoreATS(text),
	}

	total := 0
	for _, d := range dims {
		total += d.Score
	}
	scaled := math.Round(float64(total)/float64(dimensionCount*maxPerDimension)*1000) / 10

	return types.PresentationReport{
		Dimensions: dims,
		Total:      total,
		Score:      scaled,
	}
}

// scoreTypography penalizes shouting and overlong lines, the two
// typography problems still visible after text extraction.
func scoreTypography(text string) types.DimensionScore {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return dimension("Typography", 0)
	}

	bad := 0
	for _, line := range lines {
		allCaps := !lowercaseSequence.MatchString(line) && len(line) > 3
		if allCaps || len([]rune(line)) > maxLineLength {
			bad++
		}
	}
	score := int(math.Round((1 - float64(bad)/float64(len(lines))) * maxPerDimension))
	if score < 0 {
		score = 0
	}
	return dimension("Typography", score)
}

// scoreLayout checks line density and breathing room between blocks.
func scoreLayout(text string) types.DimensionScore {
	all := strings.Split(text, "\n")
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return dimension("Layout", 0)
	}

	totalLen := 0
	for _, line := range lines {
		totalLen += len([]rune(line))
	}
	avgLen := float64(totalLen) / float64(len(lines))

	score := 0
	if avgLen <= 90 {
		score = 3
	}

	blankRatio := float64(len(all)-len(lines)) / float64(len(all))
	bonus := (blankRatio - 0.05) / 0.15 * 2
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 2 {
		bonus = 2
	}
	score += int(bonus)
	return dimension("Layout", score)
}

// scoreConsistency rates bullet-style uniformity and date-range
// punctuation. En-dash ranges score best, hyphen ranges are tolerated.
func scoreConsistency(text string) types.DimensionScore {
	bulletTypes := map[string]struct{}{}
	for _, b := range bulletPattern.FindAllString(text, -1) {
		// The bullet may be multibyte, so slice by rune.
		bulletTypes[string([]rune(b)[0])] = struct{}{}
	}
	bulletScore := maxPerDimension
	if len(bulletTypes) > 1 {
		bulletScore = maxPerDimension - len(bulletTypes)
		if bulletScore < 0 {
			bulletScore = 0
		}
	}

	dash := enDashRange.MatchString(text)
	hyphen := hyphenRange.MatchString(text)
	dateScore := 1
	switch {
	case dash && !hyphen:
		dateScore = 5
	case dash:
		dateScore = 3
	}

	return dimension("Consistency", int(math.Round(float64(bulletScore+dateScore)/2)))
}

func scorePageLength(pages int) types.DimensionScore {
	score := 0
	switch pages {
	case 1:
		score = 5
	case 2:
		score = 3
	}
	return dimension("PageLength", score)
}

func scoreATS(text string) types.DimensionScore {
	score := maxPerDimension
	if imageMarkup.MatchString(text) {
		score = 0
	}
	return dimension("ATS", score)
}

func dimension(name string, score int) types.DimensionScore {
	return types.DimensionScore{
		Name:       name,
		Score:      score,
		Suggestion: suggestions[name][score],
	}
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Render prints per-dimension scores and the stable summary line.
func Render(out io.Writer, report types.PresentationReport) {
	fmt.Fprintf(out, "Presentation dimension scores & suggestions:\n\n")
	for _, d := range report.Dimensions {
		fmt.Fprintf(out, "- %-12s: %d/%d   %s\n", d.Name, d.Score, maxPerDimension, d.Suggestion)
	}
	fmt.Fprintf(out, "\nPresentation Score: %.1f/100\n", report.Score)
}
