package testutil

import (
	"github.com/hupe1980/remedymesh/core"
)

// IssueBuilder helps construct issues with fluent chaining for tests.
// Example:
//
//	issue := NewIssueBuilder(core.IssueToolError).Error("Connection timeout").Build()
type IssueBuilder struct {
	issue core.Issue
}

// NewIssueBuilder creates a new builder for an issue of the given type.
// Use chainable methods then call Build.
func NewIssueBuilder(t core.IssueType) *IssueBuilder {
	return &IssueBuilder{issue: core.Issue{Type: t}}
}

// ValidationErrors sets the validation error list (chainable).
func (b *IssueBuilder) ValidationErrors(errs ...string) *IssueBuilder {
	b.ensureValidation()
	b.issue.Validation.Errors = append(b.issue.Validation.Errors, errs...)
	return b
}

// ValidationWarnings sets the validation warning list (chainable).
func (b *IssueBuilder) ValidationWarnings(warnings ...string) *IssueBuilder {
	b.ensureValidation()
	b.issue.Validation.Warnings = append(b.issue.Validation.Warnings, warnings...)
	return b
}

// Error sets the tool-error message (chainable).
func (b *IssueBuilder) Error(msg string) *IssueBuilder {
	b.issue.Error = msg
	return b
}

// Stage sets the low-confidence stage label (chainable).
func (b *IssueBuilder) Stage(stage string) *IssueBuilder {
	b.issue.Stage = stage
	return b
}

// Metric sets a confidence metric (chainable).
func (b *IssueBuilder) Metric(key string, value any) *IssueBuilder {
	if b.issue.Metrics == nil {
		b.issue.Metrics = map[string]any{}
	}
	b.issue.Metrics[key] = value
	return b
}

// Request sets a working-request key (chainable).
func (b *IssueBuilder) Request(key string, value any) *IssueBuilder {
	if b.issue.Request == nil {
		b.issue.Request = map[string]any{}
	}
	b.issue.Request[key] = value
	return b
}

// Build returns the constructed core.Issue.
func (b *IssueBuilder) Build() core.Issue {
	return b.issue.Clone()
}

func (b *IssueBuilder) ensureValidation() {
	if b.issue.Validation == nil {
		b.issue.Validation = &core.ValidationResult{}
	}
}
