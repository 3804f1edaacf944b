package types

// StructureReport records which essential resume sections were found.
type StructureReport struct {
	Present  []string          `json:"present"`
	Missing  []string          `json:"missing"`
	Sections map[string]string `json:"sections,omitempty"` // section -> matched evidence
	Total    int               `json:"total"`
	Score    float64           `json:"score"` // 0-100
}

// DimensionScore is one presentation dimension scored 0-5.
type DimensionScore struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PresentationReport aggregates the five presentation dimensions.
type PresentationReport struct {
	Dimensions []DimensionScore `json:"dimensions"`
	Total      int              `json:"total"` // out of 25
	Score      float64          `json:"score"` // scaled to 0-100
}

// QualityReport is the final weighted aggregate for one resume.
type QualityReport struct {
	RunID             string  `json:"run_id,omitempty"`
	Source            string  `json:"source"`
	StructureScore    float64 `json:"structure_score"`
	LanguageScore     float64 `json:"language_score"`
	PresentationScore float64 `json:"presentation_score"`
	OverallScore      float64 `json:"overall_score"`

	Structure    *StructureReport    `json:"structure,omitempty"`
	Language     *ScoredReport       `json:"language,omitempty"`
	Presentation *PresentationReport `json:"presentation,omitempty"`
}
