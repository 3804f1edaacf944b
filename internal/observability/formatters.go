// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-quality/internal/matching"
	"github.com/jonathan/cv-quality/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStructureReport outputs the essential-section check results.
func (p *Printer) PrintStructureReport(report *types.StructureReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Present (%d/%d): %s\n", len(report.Present), report.Total, strings.Join(report.Present, ", ")))
	if len(report.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:        %s\n", strings.Join(report.Missing, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\nScore: %.1f/100", report.Score))

	p.printBox("STRUCTURE CHECK", sb.String())
}

// PrintLanguageReport outputs the error-density summary and top issues.
func (p *Printer) PrintLanguageReport(report *types.ScoredReport, issues []types.IssueMatch) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:   %d\n", report.WordCount))
	sb.WriteString(fmt.Sprintf("Errors:  %d (%.1f per 100 words)\n", report.ErrorCount, report.ErrorsPer100Words))
	sb.WriteString(fmt.Sprintf("Score:   %.1f/100\n", report.QualityScore))

	if len(issues) > 0 {
		sb.WriteString("\nTop issues:\n")
		count := min(len(issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			ruleID := "<rule>"
			if issues[i].RuleID != nil {
				ruleID = *issues[i].RuleID
			}
			sb.WriteString(fmt.Sprintf("  • @%d %s\n", issues[i].Offset, ruleID))
		}
		if len(issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(issues)-maxItemsToShow))
		}
	}

	p.printBox("LANGUAGE QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPresentationReport outputs per-dimension presentation scores.
func (p *Printer) PrintPresentationReport(report *types.PresentationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for _, d := range report.Dimensions {
		sb.WriteString(fmt.Sprintf("%-12s %d/5\n", d.Name, d.Score))
	}
	sb.WriteString(fmt.Sprintf("\nScore: %.1f/100", report.Score))

	p.printBox("PRESENTATION", sb.String())
}

// PrintQualityReport outputs the final weighted aggregate.
func (p *Printer) PrintQualityReport(report *types.QualityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", report.Source))
	if report.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run:    %s\n", report.RunID))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Structure:    %5.1f\n", report.StructureScore))
	sb.WriteString(fmt.Sprintf("Language:     %5.1f\n", report.LanguageScore))
	sb.WriteString(fmt.Sprintf("Presentation: %5.1f\n", report.PresentationScore))
	sb.WriteString(fmt.Sprintf("\nOverall: %.1f/100", report.OverallScore))

	p.printBox("CV QUALITY REPORT", sb.String())
}

// PrintTopMatches outputs the job-matching shortlist.
func (p *Printer) PrintTopMatches(matches []matching.Match) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		title := matches[i].Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.3f\n", matches[i].Score))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP JOB MATCHES", sb.String())
}
