package resolver

import (
	"context"
	"fmt"

	"github.com/hupe1980/remedymesh/core"
)

// LowConfidence reports results produced below the confidence floor. It
// never auto-resolves; the engine escalates after the iteration budget.
type LowConfidence struct{}

// NewLowConfidence creates the low-confidence resolver.
func NewLowConfidence() *LowConfidence { return &LowConfidence{} }

// Resolve implements core.Resolver.
func (r *LowConfidence) Resolve(_ context.Context, issue core.Issue, _ core.Context) (core.ReasoningResult, error) {
	res := core.NewReasoningResult()
	res.Resolution = fmt.Sprintf("Low confidence detected at %s", issue.Stage)
	if lb, ok := issue.Metrics["LowerBound"]; ok {
		res.AddAction(fmt.Sprintf("LowerBound: %v", lb))
	}
	res.AddAction("Reanalyzing context and suggesting improvements")
	return res, nil
}
