package resolver

import (
	"context"

	"github.com/hupe1980/remedymesh/core"
)

// Unknown is the fallback for issue types without a registered resolver.
type Unknown struct{}

// NewUnknown creates the unknown-type resolver.
func NewUnknown() *Unknown { return &Unknown{} }

// Resolve implements core.Resolver. Always unresolved, no actions.
func (r *Unknown) Resolve(_ context.Context, _ core.Issue, _ core.Context) (core.ReasoningResult, error) {
	res := core.NewReasoningResult()
	res.Resolution = "Unknown issue type"
	return res, nil
}
