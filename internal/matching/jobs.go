// Package matching ranks job postings against a résumé using TF-IDF
// features and cosine similarity.
package matching

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Job is one posting from the listings CSV.
type Job struct {
	Title          string
	Description    string
	RequiredSkills string
}

var (
	nonAlnum       = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	skillSeparator = regexp.MustCompile(`[;,]`)
)

// LoadJobsCSV reads postings from a CSV with header columns title,
// description, and requiredSkills (case-insensitive). Missing optional
// columns read as empty strings.
func LoadJobsCSV(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening jobs file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading jobs file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("jobs file %s is empty", path)
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	titleCol, ok := columns["title"]
	if !ok {
		return nil, fmt.Errorf("jobs file %s has no title column", path)
	}
	descCol, hasDesc := columns["description"]
	skillsCol, hasSkills := columns["requiredskills"]

	jobs := make([]Job, 0, len(records)-1)
	for _, row := range records[1:] {
		job := Job{Title: field(row, titleCol)}
		if hasDesc {
			job.Description = field(row, descCol)
		}
		if hasSkills {
			job.RequiredSkills = field(row, skillsCol)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func field(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// Combined is the job's full text for vectorization.
func (j Job) Combined() string {
	return NormalizeForMatching(j.Title + " " + j.Description + " " + j.RequiredSkills)
}

// NormalizeForMatching lowercases, strips non-alphanumerics, and
// collapses whitespace runs.
func NormalizeForMatching(text string) string {
	text = strings.ToLower(text)
	text = nonAlnum.ReplaceAllString(text, " ")
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}

// ParseSkills reads a requiredSkills cell. A bracketed list form like
// ["Go", "SQL"] is split on commas with quotes stripped; otherwise the
// cell splits on semicolons or commas. Entries come back lowercased.
func ParseSkills(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	var parts []string
	if strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		parts = strings.Split(cell[1:len(cell)-1], ",")
	} else {
		parts = skillSeparator.Split(cell, -1)
	}

	var skills []string
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p != "" {
			skills = append(skills, strings.ToLower(p))
		}
	}
	return skills
}

// TopSkills returns the k most frequent skills across all postings.
// Ties break toward the skill seen first.
func TopSkills(jobs []Job, k int) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := 0
	for _, job := range jobs {
		for _, skill := range ParseSkills(job.RequiredSkills) {
			if _, seen := counts[skill]; !seen {
				firstSeen[skill] = order
				order++
			}
			counts[skill]++
		}
	}

	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return firstSeen[skills[i]] < firstSeen[skills[j]]
	})

	if k > 0 && len(skills) > k {
		skills = skills[:k]
	}
	return skills
}
