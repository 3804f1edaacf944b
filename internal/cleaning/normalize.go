// Package cleaning canonicalizes extracted resume text before grammar scoring.
package cleaning

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// defaultLigatures maps multi-letter ligature glyphs and two private-use
// fallbacks that survive PDF extraction to their ASCII letter sequences.
// The Unicode ligature block entries are normally folded by NFKC already;
// they stay in the table for extractions that bypass normalization.
var defaultLigatures = map[rune]string{
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'\uf001': "fi", // PUA fallback some PDF fonts emit for fi
	'\uf002': "fl", // PUA fallback some PDF fonts emit for fl
}

// invisibleChars removes soft hyphen, zero-width space, and BOM.
var invisibleChars = strings.NewReplacer(
	"\u00ad", "", // soft hyphen
	"\u200b", "", // zero-width space
	"\ufeff", "", // byte-order mark
)

// lineBreakHyphen matches a word broken across a line break by a trailing
// hyphen, e.g. "fast-\nevolving". The word-character classes on both sides
// keep unrelated dash-separated tokens intact.
var lineBreakHyphen = regexp.MustCompile(`(\w)-\s*\n(\w)`)

// Normalizer applies character-level canonicalization to extracted text.
type Normalizer struct {
	ligatures     map[rune]string
	unwrapHyphens bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLigatures replaces the default ligature substitution table.
func WithLigatures(table map[rune]string) Option {
	return func(n *Normalizer) {
		n.ligatures = table
	}
}

// WithoutHyphenUnwrap disables joining of words hyphenated across line breaks.
func WithoutHyphenUnwrap() Option {
	return func(n *Normalizer) {
		n.unwrapHyphens = false
	}
}

// NewNormalizer creates a Normalizer with the default ligature table and
// line-break hyphen unwrapping enabled.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		ligatures:     defaultLigatures,
		unwrapHyphens: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize folds compatibility characters (NFKC), expands ligature glyphs,
// strips invisible characters, and joins words hyphenated across line breaks.
// It is pure and idempotent; empty input yields empty output.
func (n *Normalizer) Normalize(s string) string {
	s = norm.NFKC.String(s)

	if len(n.ligatures) > 0 && strings.ContainsFunc(s, func(r rune) bool {
		_, ok := n.ligatures[r]
		return ok
	}) {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if repl, ok := n.ligatures[r]; ok {
				b.WriteString(repl)
				continue
			}
			b.WriteRune(r)
		}
		s = b.String()
	}

	s = invisibleChars.Replace(s)

	if n.unwrapHyphens {
		s = lineBreakHyphen.ReplaceAllString(s, "$1-$2")
	}
	return s
}

// Normalize canonicalizes text with the default Normalizer settings.
func Normalize(s string) string {
	return NewNormalizer().Normalize(s)
}
