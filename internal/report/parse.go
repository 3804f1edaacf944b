package report

import (
	"strconv"
	"strings"
)

// ExtractPercent scans output line by line for marker and parses the
// trailing numeric token of the first matching line. Both "98.6%" and
// "98.6/100" forms are accepted. Returns 0 when no line matches or the
// token does not parse.
func ExtractPercent(output, marker string) float64 {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return 0
		}
		token := fields[len(fields)-1]
		token, _, _ = strings.Cut(token, "/")
		token = strings.TrimSuffix(token, "%")
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0
		}
		return value
	}
	return 0
}
