// Package types defines the shared data structures passed between pipeline stages.
package types

// IssueMatch is one problem reported by the external grammar checker.
// Offset is the only field the checker is required to populate; every other
// field is optional and resolves to a documented fallback downstream
// (see language.Snippet and report.RenderIssue).
type IssueMatch struct {
	// Offset is a 0-based character position into the cleaned document.
	Offset int `json:"offset"`
	// Length is the flagged span length; nil or zero means the checker did
	// not report one and the snippet falls back to Context or a fixed-width
	// slice from Offset.
	Length *int `json:"length,omitempty"`
	// RuleID is the checker's opaque category tag for the rule that fired.
	RuleID *string `json:"rule_id,omitempty"`
	// Message is the human-readable description of the problem.
	Message *string `json:"message,omitempty"`
	// Replacements holds candidate fixes in checker-preference order.
	Replacements []string `json:"replacements,omitempty"`
	// IssueType is an optional category label (e.g. "misspelling").
	IssueType *string `json:"issue_type,omitempty"`
	// Context is the checker-provided surrounding text, used as a snippet
	// fallback when no span length was reported.
	Context *string `json:"context,omitempty"`
}

// ScoredReport summarizes the error density of one document.
type ScoredReport struct {
	WordCount         int     `json:"word_count"`
	ErrorCount        int     `json:"error_count"`
	ErrorsPer100Words float64 `json:"errors_per_100_words"`
	QualityScore      float64 `json:"quality_score"`
}
