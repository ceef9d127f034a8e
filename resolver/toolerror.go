package resolver

import (
	"context"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/remedy"
)

// ToolError analyzes failed tool invocations: it records the raw error,
// classifies the root cause and consults the remediation policy table for
// the verdict and suggested steps. The resolver only decides and reports;
// executing a retry is left to the caller.
type ToolError struct{}

// NewToolError creates the tool-error resolver.
func NewToolError() *ToolError { return &ToolError{} }

// Resolve implements core.Resolver.
func (r *ToolError) Resolve(_ context.Context, issue core.Issue, _ core.Context) (core.ReasoningResult, error) {
	res := core.NewReasoningResult()
	res.AddAction("Error: " + issue.Error)

	cause := remedy.Classify(issue.Error)
	res.AddAction("Root cause: " + string(cause))

	advice := remedy.Advise(cause)
	res.Actions = append(res.Actions, advice.Actions...)
	res.Resolved = advice.AutoResolved
	if advice.AutoResolved {
		res.Resolution = "Automatic remediation suggested"
	} else {
		res.Resolution = "Tool error requires intervention"
	}
	return res, nil
}
