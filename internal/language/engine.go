package language

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-quality/internal/allowlist"
	"github.com/jonathan/cv-quality/internal/cleaning"
	"github.com/jonathan/cv-quality/internal/types"
)

// Engine wires cleaning, the allow-list, the external checker, and the
// filter/scorer into one pass over a document.
type Engine struct {
	Normalizer  *cleaning.Normalizer
	Checker     Checker
	Extractor   allowlist.EntityExtractor
	Enumerator  allowlist.RegistryEnumerator
	ManualTerms []string
	IgnoreRules map[string]struct{}
}

// Result is the outcome of a full language pass: the cleaned text that
// was checked, the surviving issues, and the score computed from them.
type Result struct {
	CheckedText string
	Issues      []types.IssueMatch
	Report      types.ScoredReport
}

// NewEngine builds an engine with the default cleaning pipeline,
// heuristic entity extraction, and cosmetic-rule exclusions.
func NewEngine(checker Checker) *Engine {
	return &Engine{
		Normalizer:  cleaning.NewNormalizer(),
		Checker:     checker,
		Extractor:   allowlist.HeuristicExtractor{},
		IgnoreRules: DefaultIgnoreRules(),
	}
}

// Run cleans the raw text, checks it, and filters and scores the
// resulting matches. The allow-list is rebuilt per call from the
// cleaned text so extracted entities reflect what the checker saw.
func (e *Engine) Run(ctx context.Context, rawText string) (*Result, error) {
	cleaned := e.Normalizer.StripNoise(rawText)

	allowed, err := allowlist.Build(cleaned, e.Extractor, e.Enumerator, e.ManualTerms)
	if err != nil {
		return nil, fmt.Errorf("building allow-list: %w", err)
	}

	matches, err := e.Checker.Check(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	issues, report := FilterAndScore(cleaned, matches, e.IgnoreRules, allowed)
	return &Result{
		CheckedText: cleaned,
		Issues:      issues,
		Report:      report,
	}, nil
}
