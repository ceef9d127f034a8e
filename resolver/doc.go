// Package resolver contains the type-specific decision routines the engine
// dispatches to: validation-failure correction, tool-error analysis,
// low-confidence reporting and the unknown-type fallback. Each resolver is
// stateless per invocation and produces a fresh ReasoningResult; the engine
// owns iteration, merging and escalation.
package resolver
