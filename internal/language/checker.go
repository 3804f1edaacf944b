// Package language runs the external grammar check and turns raw matches
// into a filtered, ordered issue list with a density-based quality score.
package language

import (
	"context"

	"github.com/jonathan/cv-quality/internal/types"
)

// Checker is the external grammar/style service. The engine issues one
// synchronous call per document; a transport failure is fatal to the
// scoring stage and is never retried.
type Checker interface {
	Check(ctx context.Context, text string) ([]types.IssueMatch, error)
}
