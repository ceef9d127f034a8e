// Package plan produces the optional structured follow-up plan attached to
// escalated results. Plan suggestion is strictly best-effort: the engine
// drops it silently when generation fails, so a suggester can never break
// the resolve contract.
package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/model"
)

const systemPrompt = `You are a remediation planner for an operations system.
Given a failed issue and the automated reasoning trail, propose a short
follow-up plan a human operator can execute. Answer with a one-line summary
followed by numbered or dashed steps. No prose outside the plan.`

// Suggester produces a structured follow-up plan for an issue the engine
// could not resolve. The returned mapping must be JSON-serializable.
type Suggester interface {
	SuggestPlan(ctx context.Context, issue core.Issue, result core.ReasoningResult) (map[string]any, error)
}

// Options configures a ModelSuggester.
type Options struct {
	// MaxSteps caps the number of steps kept from the model output.
	MaxSteps int
	// MaxTokens bounds the completion length.
	MaxTokens int64
}

// ModelSuggester asks a language model for the follow-up plan.
type ModelSuggester struct {
	model model.Model
	opts  Options
}

// NewModelSuggester creates a suggester backed by the given model.
func NewModelSuggester(m model.Model, optFns ...func(o *Options)) *ModelSuggester {
	opts := Options{MaxSteps: 6, MaxTokens: 512}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ModelSuggester{model: m, opts: opts}
}

// SuggestPlan implements Suggester.
func (s *ModelSuggester) SuggestPlan(ctx context.Context, issue core.Issue, result core.ReasoningResult) (map[string]any, error) {
	resp, err := s.model.Generate(ctx, model.Request{
		Instructions: systemPrompt,
		Messages:     []model.Message{{Role: "user", Text: buildPrompt(issue, result)}},
		MaxTokens:    s.opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("plan suggestion: %w", err)
	}
	plan := Parse(resp.Text, s.opts.MaxSteps)
	if plan == nil {
		return nil, fmt.Errorf("plan suggestion: empty model output")
	}
	return plan, nil
}

// buildPrompt summarizes the issue and reasoning trail for the model.
func buildPrompt(issue core.Issue, result core.ReasoningResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Issue type: %s\n", issue.Type)
	if issue.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n", issue.Error)
	}
	if issue.Stage != "" {
		fmt.Fprintf(&b, "Stage: %s\n", issue.Stage)
	}
	if issue.Validation != nil && len(issue.Validation.Errors) > 0 {
		fmt.Fprintf(&b, "Validation errors: %s\n", strings.Join(issue.Validation.Errors, "; "))
	}
	if len(result.Actions) > 0 {
		b.WriteString("Automated reasoning trail:\n")
		for _, a := range result.Actions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	return b.String()
}

// Parse converts raw model output into the suggested_plan mapping: the first
// non-empty line becomes the summary, subsequent dashed or numbered lines
// become steps (capped at maxSteps). Returns nil for output with no content.
func Parse(text string, maxSteps int) map[string]any {
	var summary string
	var steps []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if summary == "" {
			summary = strings.TrimPrefix(line, "Summary:")
			summary = strings.TrimSpace(summary)
			continue
		}
		if maxSteps > 0 && len(steps) >= maxSteps {
			break
		}
		steps = append(steps, trimStepMarker(line))
	}

	if summary == "" {
		return nil
	}
	plan := map[string]any{"summary": summary}
	if len(steps) > 0 {
		plan["steps"] = steps
	}
	return plan
}

// trimStepMarker strips leading "-", "*" or "1." style markers.
func trimStepMarker(line string) string {
	line = strings.TrimLeft(line, "-* \t")
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' || c == ')' {
			return strings.TrimSpace(line[i+1:])
		}
		break
	}
	return strings.TrimSpace(line)
}
