// Package allowlist builds the set of terms exempt from grammar flagging:
// proper nouns, acronyms, and software names a generic checker would flag
// as misspellings.
package allowlist

import (
	"fmt"
	"strings"
)

// EntityExtractor produces named entities, proper-noun tokens, and acronym
// candidates from document text. Implementations may call out to an external
// linguistic annotation service.
type EntityExtractor interface {
	Extract(text string) (map[string]struct{}, error)
}

// RegistryEnumerator lists software and library names known to the
// environment, e.g. from an installed-package registry.
type RegistryEnumerator interface {
	ListNames() (map[string]struct{}, error)
}

// AllowList is a case-insensitive set of terms never counted as errors.
// Terms are lowercased on insertion and lookup; no other normalization
// is applied.
type AllowList map[string]struct{}

// Add inserts a term after trimming and case-folding it.
func (a AllowList) Add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	a[term] = struct{}{}
}

// Contains reports whether the case-folded term is present.
func (a AllowList) Contains(term string) bool {
	_, ok := a[strings.ToLower(term)]
	return ok
}

// Build unions entity candidates, registry names, and manually configured
// terms into one lookup set. Either collaborator may be nil to skip that
// source; a failing collaborator aborts the build rather than degrading to
// a partial allow-list.
func Build(text string, extractor EntityExtractor, enumerator RegistryEnumerator, manualTerms []string) (AllowList, error) {
	allow := make(AllowList)

	if extractor != nil {
		entities, err := extractor.Extract(text)
		if err != nil {
			return nil, fmt.Errorf("entity extraction failed: %w", err)
		}
		for term := range entities {
			allow.Add(term)
		}
	}

	if enumerator != nil {
		names, err := enumerator.ListNames()
		if err != nil {
			return nil, fmt.Errorf("registry enumeration failed: %w", err)
		}
		for name := range names {
			allow.Add(name)
		}
	}

	for _, term := range manualTerms {
		allow.Add(term)
	}

	return allow, nil
}
