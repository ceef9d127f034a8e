package core

import "context"

// Resolver is a type-specific decision routine. Implementations inspect the
// current working issue plus the normalized session context and report
// whether the issue can be resolved automatically.
//
// A non-nil error is a fault: the engine terminates the dispatch loop
// immediately and surfaces the error text as the final resolution. Normal
// "cannot auto-resolve" outcomes are not errors; they are returned as an
// unresolved ReasoningResult.
type Resolver interface {
	Resolve(ctx context.Context, issue Issue, sessionCtx Context) (ReasoningResult, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, issue Issue, sessionCtx Context) (ReasoningResult, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, issue Issue, sessionCtx Context) (ReasoningResult, error) {
	return f(ctx, issue, sessionCtx)
}
