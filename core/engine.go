package core

import "context"

// Engine decides whether an operational issue can be remediated
// automatically.
//
// A concrete implementation is responsible for:
//   - Normalizing the session context once per resolve call
//   - Dispatching to a type-specific resolver for the issue
//   - Iterating up to a bounded attempt budget, feeding corrections back
//     into the working issue between rounds
//   - Escalating when the budget is exhausted without resolution
//
// Implementations MUST:
//   - Return a fully populated ReasoningResult on every call
//   - Never propagate a resolver fault to the caller; faults become the
//     final resolution text of an unresolved result
type Engine interface {
	// Resolve runs the reasoning loop for a typed issue and session context.
	Resolve(ctx context.Context, issue Issue, sessionCtx Context) ReasoningResult

	// ResolveRaw accepts arbitrary mapping-shaped values as supplied over a
	// transport boundary. Malformed shapes (non-mappings) are reported as
	// the final resolution text; the loop never starts for them.
	ResolveRaw(ctx context.Context, issue, sessionCtx any) ReasoningResult

	// Register installs or replaces the resolver for an issue type.
	Register(t IssueType, r Resolver)
}
