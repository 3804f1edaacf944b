package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jonathan/cv-quality/internal/types"
)

const (
	indent         = "    "
	maxSuggestions = 5
	noSuggestions  = "<none>"
	defaultWidth   = 100
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	scoreColor  = color.New(color.FgGreen, color.Bold)
)

// Renderer writes issue blocks and the score summary to an output stream.
type Renderer struct {
	Out   io.Writer
	Width int
}

// NewRenderer creates a renderer for the given stream with the default
// message-wrap width.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out, Width: defaultWidth}
}

// Render prints the full language report: the summary block first, then
// one block per issue.
func (r *Renderer) Render(text string, issues []types.IssueMatch, report types.ScoredReport) {
	r.RenderSummary(report)
	r.RenderIssues(text, issues)
}

// RenderSummary prints the score block. Downstream tooling parses these
// lines by prefix, so labels and number formats must stay stable.
func (r *Renderer) RenderSummary(report types.ScoredReport) {
	fmt.Fprintf(r.Out, "Word Count:               %d\n", report.WordCount)
	fmt.Fprintf(r.Out, "Grammar/Spelling Errors:  %d\n", report.ErrorCount)
	fmt.Fprintf(r.Out, "Errors per 100 words:     %.1f\n", report.ErrorsPer100Words)
	scoreColor.Fprintf(r.Out, "Language Quality Score:   %.1f/100\n", report.QualityScore)
	fmt.Fprintln(r.Out)
}

// RenderIssues prints one caret-underlined block per issue, in the order
// given.
func (r *Renderer) RenderIssues(text string, issues []types.IssueMatch) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(r.Out, "Errors found:\n\n")
	for i, issue := range issues {
		r.renderIssue(text, issue, i+1)
	}
}

func (r *Renderer) renderIssue(text string, issue types.IssueMatch, index int) {
	runes := []rune(text)
	offset := issue.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	ruleID := "<rule>"
	if issue.RuleID != nil {
		ruleID = *issue.RuleID
	}
	line, col := OffsetToLineCol(text, offset)
	headerColor.Fprintf(r.Out, "[%d] Line %d, Col %d - %s\n", index, line, col, ruleID)

	start, end := lineBounds(runes, offset)
	lineText := strings.TrimRight(string(runes[start:end]), "\r")
	fmt.Fprintln(r.Out, indent+lineText)

	length := 0
	if issue.Length != nil {
		length = *issue.Length
	}
	if length < 1 {
		length = 1
	}
	// Clamp the underline to the visible line so malformed spans cannot
	// push rendering out of bounds.
	if remaining := end - offset; length > remaining {
		length = remaining
	}
	if length < 1 {
		length = 1
	}
	caret := strings.Repeat(" ", offset-start) + strings.Repeat("^", length)
	fmt.Fprintln(r.Out, indent+caret)

	message := ""
	if issue.Message != nil {
		message = *issue.Message
	}
	fmt.Fprintln(r.Out, wrap("Message: "+message, r.width()))

	suggestions := noSuggestions
	if len(issue.Replacements) > 0 {
		picks := issue.Replacements
		if len(picks) > maxSuggestions {
			picks = picks[:maxSuggestions]
		}
		suggestions = strings.Join(picks, ", ")
	}
	fmt.Fprintln(r.Out, indent+"Suggestions: "+suggestions)

	if issue.IssueType != nil && *issue.IssueType != "" {
		fmt.Fprintf(r.Out, indent+"Type: %s\n", *issue.IssueType)
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return defaultWidth
}

// wrap folds text at word boundaries so no output line exceeds width.
// Words longer than the width are emitted on their own line unbroken.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			b.WriteString(indent + word)
			lineLen = len(indent) + len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			b.WriteString("\n" + indent + word)
			lineLen = len(indent) + len(word)
			continue
		}
		b.WriteString(" " + word)
		lineLen += 1 + len(word)
	}
	return b.String()
}
