package presentation

// Per-dimension advice keyed by score. Scores without an entry render
// with an empty suggestion.
var suggestions = map[string]map[int]string{
	"Typography": {
		0: "No readable body text found. Rework the document with standard fonts and sizes.",
		1: "Most lines are all-caps or overflow the page. Reserve capitals for short headings.",
		2: "Several lines are all-caps or too long. Keep body lines under ~110 characters.",
		3: "Good, but a few shouting or overlong lines remain.",
		4: "Almost perfect. Only minor line-length or capitalization issues.",
		5: "Excellent. Clean, readable body text throughout.",
	},
	"Layout": {
		0: "Page too dense. Break content into shorter lines and add blank lines between blocks.",
		1: "Very little breathing room. Increase spacing between sections.",
		2: "Line lengths pass, but blank-line ratio is low. Add whitespace between sections.",
		3: "Layout OK, whitespace could be a bit more generous.",
		4: "Good balance of text and white space.",
		5: "Well-spaced layout with clear section separation.",
	},
	"Consistency": {
		0: "Mixed bullet styles and date formats. Pick one bullet and use an en-dash for dates.",
		1: "Multiple inconsistencies. Standardize bullets and date separators.",
		2: "Some inconsistencies in bullets or dates remain.",
		3: "Consistency mostly good, minor mixing of bullet or date styles.",
		4: "Very consistent. Only one minor deviation.",
		5: "Perfectly consistent bullets and date ranges.",
	},
	"PageLength": {
		0: "Wrong page count. Aim for 1 page, or 2 with long experience.",
		3: "Two pages is acceptable for a longer career history.",
		5: "Perfect page length.",
	},
	"ATS": {
		0: "Contains images or markup that break automated resume parsing.",
		5: "Fully parser-friendly. Plain text, no embedded images.",
	},
}
