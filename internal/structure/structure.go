// Package structure checks a résumé's text for the essential sections
// and scores their presence.
package structure

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/cv-quality/internal/types"
)

// Essential sections in report order. Each is detected by the first
// line matching its pattern.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"email", regexp.MustCompile(`(?m)^.*\S+@\S+.*$`)},
	{"education", regexp.MustCompile(`(?im)^.*\b(education|university|bachelor|master|ph\.?d|degree)\b.*$`)},
	{"experience", regexp.MustCompile(`(?im)^.*\b(experience|employment|work history)\b.*$`)},
	{"skills", regexp.MustCompile(`(?im)^.*\bskills\b.*$`)},
}

// Check detects which essential sections the text contains. The
// Sections map holds the first matching line for each section found.
func Check(text string) types.StructureReport {
	report := types.StructureReport{
		Sections: make(map[string]string, len(sectionPatterns)),
		Total:    len(sectionPatterns),
	}

	for _, sp := range sectionPatterns {
		if line := sp.pattern.FindString(text); line != "" {
			report.Present = append(report.Present, sp.name)
			report.Sections[sp.name] = strings.TrimSpace(line)
		} else {
			report.Missing = append(report.Missing, sp.name)
		}
	}

	report.Score = math.Round(float64(len(report.Present))/float64(report.Total)*1000) / 10
	return report
}

// Render prints the section check in the stable format downstream
// prefix parsing expects.
func Render(out io.Writer, report types.StructureReport) {
	if len(report.Missing) > 0 {
		fmt.Fprintln(out, "Missing essential sections:")
		for _, name := range report.Missing {
			fmt.Fprintf(out, " - %s\n", name)
		}
	} else {
		fmt.Fprintln(out, "All essential sections are present.")
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Present sections (%d/%d): %s\n", len(report.Present), report.Total, strings.Join(report.Present, ", "))
	fmt.Fprintf(out, "Structure Score: %d/%d -> %.1f%%\n", len(report.Present), report.Total, report.Score)
}
