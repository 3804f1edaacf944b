// Package report renders filtered language issues and the score summary
// as human-readable text, with exact line/column positions and caret
// underlines pointing at the flagged spans.
package report

// OffsetToLineCol converts a code-point offset into a 1-based line and
// column. Offsets outside the text are clamped to its bounds.
func OffsetToLineCol(text string, offset int) (line, col int) {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	line, col = 1, 1
	for _, r := range runes[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// lineBounds returns the half-open code-point range of the line
// containing offset, excluding the surrounding newlines.
func lineBounds(runes []rune, offset int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	start = offset
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end = offset
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return start, end
}
