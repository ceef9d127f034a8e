package core

import (
	"fmt"
)

// ErrNotMapping is returned when a raw issue or context value supplied at the
// boundary is not a mapping structure.
var ErrNotMapping = fmt.Errorf("value is not a mapping")

// IssueType discriminates the closed set of issue variants the engine knows
// how to dispatch. Unrecognized type strings are legal inputs; they fall
// through to the unknown-type resolver.
type IssueType string

const (
	// IssueValidationFailure indicates an upstream validation pass rejected a request.
	IssueValidationFailure IssueType = "ValidationFailure"
	// IssueToolError indicates a tool invocation failed with an error message.
	IssueToolError IssueType = "ToolError"
	// IssueLowConfidence indicates a result was produced below the confidence floor.
	IssueLowConfidence IssueType = "LowConfidence"
	// IssueUnknown is the catch-all for unrecognized issue types.
	IssueUnknown IssueType = "Unknown"
)

// ValidationResult carries the outcome of an upstream validation pass.
// Errors and Warnings are ordered, read-only inputs; resolvers must never
// mutate them.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Issue is a structured description of an operational problem requiring
// remediation. Exactly one invocation owns an Issue value; the engine works
// on its own clone and threads corrections through Merge rather than
// mutating shared state.
type Issue struct {
	Type IssueType `json:"type"`

	// Validation is set for ValidationFailure issues.
	Validation *ValidationResult `json:"validation,omitempty"`

	// Error is the raw message of a failed tool invocation (ToolError issues).
	Error string `json:"error,omitempty"`

	// Stage labels the pipeline stage that produced a LowConfidence issue.
	Stage string `json:"stage,omitempty"`

	// Metrics carries confidence metrics (e.g. LowerBound) for LowConfidence issues.
	Metrics map[string]any `json:"metrics,omitempty"`

	// Request is the working request the issue relates to. Corrections from
	// earlier dispatch rounds are merged here so later rounds see them.
	Request map[string]any `json:"request,omitempty"`
}

// Clone returns a deep copy of the issue safe for independent mutation.
func (i Issue) Clone() Issue {
	clone := i
	if i.Validation != nil {
		vr := ValidationResult{
			Errors:   append([]string(nil), i.Validation.Errors...),
			Warnings: append([]string(nil), i.Validation.Warnings...),
		}
		clone.Validation = &vr
	}
	clone.Metrics = copyMap(i.Metrics)
	clone.Request = copyMap(i.Request)
	return clone
}

// Merge returns a copy of the issue with the given correction keys folded
// into the working request. Existing keys are overwritten; the receiver is
// left unchanged.
func (i Issue) Merge(updated map[string]any) Issue {
	clone := i.Clone()
	if clone.Request == nil {
		clone.Request = make(map[string]any, len(updated))
	}
	for k, v := range updated {
		clone.Request[k] = v
	}
	return clone
}

// IssueFromMap decodes a raw caller-supplied value into an Issue. A value
// that is not a mapping is the only checked error class at the boundary.
func IssueFromMap(v any) (Issue, error) {
	m, ok := asMap(v)
	if !ok {
		return Issue{}, fmt.Errorf("issue: %w", ErrNotMapping)
	}

	issue := Issue{Type: IssueUnknown}
	if t, ok := m["Type"].(string); ok && t != "" {
		issue.Type = IssueType(t)
	}
	if raw, ok := m["ValidationResult"]; ok {
		if vm, ok := asMap(raw); ok {
			issue.Validation = &ValidationResult{
				Errors:   toStringSlice(vm["Errors"]),
				Warnings: toStringSlice(vm["Warnings"]),
			}
		}
	}
	if e, ok := m["Error"].(string); ok {
		issue.Error = e
	}
	if s, ok := m["Stage"].(string); ok {
		issue.Stage = s
	}
	if raw, ok := m["Metrics"]; ok {
		if mm, ok := asMap(raw); ok {
			issue.Metrics = mm
		}
	}
	if raw, ok := m["Request"]; ok {
		if rm, ok := asMap(raw); ok {
			issue.Request = rm
		}
	}
	return issue, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Context:
		return m, true
	default:
		return nil, false
	}
}

func toStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out
	default:
		return nil
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
