package cleaning

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	// phonePattern matches digit runs with at least 7 digits total, allowing
	// interior spaces, dashes, and parentheses, with an optional leading +.
	phonePattern    = regexp.MustCompile(`\+?\d[\d\s()-]{6,}\d`)
	lowercaseLetter = regexp.MustCompile(`[a-z]`)
)

// StripNoise normalizes text and then removes contact noise so the grammar
// checker only sees prose: emails, URLs, and phone numbers become single
// spaces, and any line left without a lowercase ASCII letter is dropped.
// Line order and newline structure of retained lines are preserved.
func (n *Normalizer) StripNoise(text string) string {
	text = n.Normalize(text)
	text = emailPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, " ")
	text = phonePattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if lowercaseLetter.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// StripNoise cleans text with the default Normalizer settings.
func StripNoise(text string) string {
	return NewNormalizer().StripNoise(text)
}
