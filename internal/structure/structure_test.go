package structure

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-quality/internal/report"
)

const completeResume = `Jane Smith
jane.smith@example.com

EDUCATION
MSc Computer Science, Example University

EXPERIENCE
Software Engineer at Example Corp

SKILLS
Go, PostgreSQL, Kubernetes
`

func TestCheckAllSectionsPresent(t *testing.T) {
	r := Check(completeResume)

	assert.Equal(t, []string{"email", "education", "experience", "skills"}, r.Present)
	assert.Empty(t, r.Missing)
	assert.Equal(t, 4, r.Total)
	assert.InDelta(t, 100.0, r.Score, 1e-9)
	assert.Equal(t, "jane.smith@example.com", r.Sections["email"])
}

func TestCheckMissingSections(t *testing.T) {
	r := Check("Jane Smith\njane@example.com\nSKILLS\nGo, SQL\n")

	assert.Equal(t, []string{"email", "skills"}, r.Present)
	assert.Equal(t, []string{"education", "experience"}, r.Missing)
	assert.InDelta(t, 50.0, r.Score, 1e-9)
}

func TestCheckEmptyText(t *testing.T) {
	r := Check("")

	assert.Empty(t, r.Present)
	assert.Len(t, r.Missing, 4)
	assert.InDelta(t, 0.0, r.Score, 1e-9)
}

func TestCheckScoreRounding(t *testing.T) {
	// One of four sections present rounds to 25.0.
	r := Check("reach me: someone@example.org")
	assert.InDelta(t, 25.0, r.Score, 1e-9)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Check(completeResume))

	out := buf.String()
	assert.Contains(t, out, "All essential sections are present.")
	assert.Contains(t, out, "Present sections (4/4): email, education, experience, skills")
	assert.Contains(t, out, "Structure Score: 4/4 -> 100.0%")
	assert.InDelta(t, 100.0, report.ExtractPercent(out, "Structure Score"), 1e-9)
}

func TestRenderMissing(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Check("no recognizable sections here"))

	out := buf.String()
	assert.Contains(t, out, "Missing essential sections:")
	assert.Contains(t, out, " - email")
	assert.Contains(t, out, "Structure Score: 0/4 -> 0.0%")
}
