package allowlist

import (
	"regexp"
	"strings"
	"unicode"
)

var wordToken = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*`)

// HeuristicExtractor approximates a named-entity service with token-shape
// rules: capitalized words count as proper-noun candidates, ALL-CAPS tokens
// as acronyms, and an ALL-CAPS token with a single trailing "s" as the
// plural of an acronym. The plural rule matches any all-caps prefix plus
// "s", so it also accepts ordinary words written that way.
type HeuristicExtractor struct{}

// Extract returns the proper-noun and acronym candidates found in text.
func (HeuristicExtractor) Extract(text string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, tok := range wordToken.FindAllString(text, -1) {
		if isProperNoun(tok) || isAcronym(tok) {
			out[tok] = struct{}{}
		}
	}
	return out, nil
}

func isProperNoun(tok string) bool {
	if len(tok) < 2 {
		return false
	}
	rest := tok[1:]
	return unicode.IsUpper(rune(tok[0])) && rest == strings.ToLower(rest) && rest != strings.ToUpper(rest)
}

func isAcronym(tok string) bool {
	if len(tok) >= 2 && tok == strings.ToUpper(tok) && tok != strings.ToLower(tok) {
		return true
	}
	// Plural form: "APIs" is the acronym "API". A single capital base
	// counts too, so "As" and "Is" pass.
	if base, ok := strings.CutSuffix(tok, "s"); ok {
		return len(base) >= 1 && base == strings.ToUpper(base) && base != strings.ToLower(base)
	}
	return false
}
