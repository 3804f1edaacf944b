package db

import (
	"time"

	"github.com/google/uuid"
)

// Run is one scoring run over a single document.
type Run struct {
	ID                uuid.UUID
	Source            string
	Status            string
	StructureScore    *float64
	LanguageScore     *float64
	PresentationScore *float64
	OverallScore      *float64
	CreatedAt         time.Time
	CompletedAt       *time.Time
}

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact categories group steps by pipeline phase.
const (
	CategoryExtraction = "extraction"
	CategoryLanguage   = "language"
	CategoryScoring    = "scoring"
)

// Artifact step names used by the pipeline.
const (
	StepExtractedText      = "extracted_text"
	StepCleanedText        = "cleaned_text"
	StepLanguageIssues     = "language_issues"
	StepStructureReport    = "structure_report"
	StepPresentationReport = "presentation_report"
	StepQualityReport      = "quality_report"
)

// nullIfEmpty maps empty strings to NULL for optional text columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
