package language

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-quality/internal/allowlist"
	"github.com/jonathan/cv-quality/internal/types"
)

// DefaultIgnoreRules are layout and capitalization rules that fire
// constantly on extracted PDF text without saying anything about the
// writing itself.
func DefaultIgnoreRules() map[string]struct{} {
	return map[string]struct{}{
		"WHITESPACE_RULE":              {},
		"COMMA_PARENTHESIS_WHITESPACE": {},
		"PUNCTUATION_PARAGRAPH_END":    {},
		"UPPERCASE_SENTENCE_START":     {},
		"HYPHENATION":                  {},
	}
}

const fallbackSnippetLen = 40

// Snippet returns the text the match refers to. It prefers the exact
// flagged span, falls back to the checker-provided context, and as a
// last resort takes a window of the document after the offset. Offsets
// count code points, matching the checker's view of the text.
func Snippet(text string, issue types.IssueMatch) string {
	runes := []rune(text)
	if issue.Length != nil && *issue.Length > 0 {
		start, end := issue.Offset, issue.Offset+*issue.Length
		if start >= 0 && end <= len(runes) && start < end {
			return string(runes[start:end])
		}
	}
	if issue.Context != nil && *issue.Context != "" {
		return *issue.Context
	}
	start := issue.Offset
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + fallbackSnippetLen
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Filter drops cosmetic and allow-listed matches and returns the rest
// ordered by document position. Matches sharing an offset keep their
// response order.
func Filter(text string, matches []types.IssueMatch, ignoreRules map[string]struct{}, allowed allowlist.AllowList) []types.IssueMatch {
	if ignoreRules == nil {
		ignoreRules = DefaultIgnoreRules()
	}

	kept := make([]types.IssueMatch, 0, len(matches))
	for _, m := range matches {
		if m.RuleID != nil {
			if _, ok := ignoreRules[*m.RuleID]; ok {
				continue
			}
		}
		snippet := strings.TrimSpace(Snippet(text, m))
		if allowed.Contains(snippet) {
			continue
		}
		kept = append(kept, m)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Offset < kept[j].Offset
	})
	return kept
}
