package resolver

import (
	"context"
	"testing"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/internal/testutil"
)

func TestLowConfidence_NeverResolves(t *testing.T) {
	issue := testutil.NewIssueBuilder(core.IssueLowConfidence).
		Stage("entity-matching").
		Metric("LowerBound", 0.42).
		Build()

	res, err := NewLowConfidence().Resolve(context.Background(), issue, core.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Resolved {
		t.Fatal("low confidence must never auto-resolve")
	}
	if res.Resolution != "Low confidence detected at entity-matching" {
		t.Fatalf("unexpected resolution: %q", res.Resolution)
	}
	if len(res.Actions) != 2 {
		t.Fatalf("expected lower-bound and reanalyze actions, got %v", res.Actions)
	}
	if res.Actions[0] != "LowerBound: 0.42" {
		t.Fatalf("unexpected lower-bound action: %q", res.Actions[0])
	}
}

func TestLowConfidence_WithoutLowerBound(t *testing.T) {
	issue := testutil.NewIssueBuilder(core.IssueLowConfidence).
		Stage("scoring").
		Build()

	res, err := NewLowConfidence().Resolve(context.Background(), issue, core.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Actions) != 1 || res.Actions[0] != "Reanalyzing context and suggesting improvements" {
		t.Fatalf("expected only the generic action, got %v", res.Actions)
	}
}

func TestUnknown(t *testing.T) {
	res, err := NewUnknown().Resolve(context.Background(), core.Issue{Type: "Other"}, core.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Resolved || res.Resolution != "Unknown issue type" || len(res.Actions) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
