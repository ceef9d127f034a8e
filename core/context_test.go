package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestContext_StringList(t *testing.T) {
	c := Context{
		"KnownUsers":     []string{"a", "b"},
		"KnownMailboxes": []any{"x", 7},
		"NotAList":       "scalar",
	}

	if got := c.KnownUsers(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected known users: %v", got)
	}
	if got := c.KnownMailboxes(); !reflect.DeepEqual(got, []string{"x", "7"}) {
		t.Fatalf("expected coerced list, got %v", got)
	}
	if got := c.StringList("NotAList"); got != nil {
		t.Fatalf("expected nil for scalar value, got %v", got)
	}
	if got := c.StringList("Missing"); got != nil {
		t.Fatalf("expected nil for missing key, got %v", got)
	}
}

func TestContextFromMap(t *testing.T) {
	c, err := ContextFromMap(map[string]any{"KnownUsers": []string{"a"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.KnownUsers()) != 1 {
		t.Fatalf("unexpected context: %#v", c)
	}

	if _, err := ContextFromMap("nope"); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("expected ErrNotMapping, got %v", err)
	}
	if _, err := ContextFromMap(nil); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("expected ErrNotMapping for nil, got %v", err)
	}
}

func TestNewReasoningResult_FullyPopulated(t *testing.T) {
	res := NewReasoningResult()
	if res.UpdatedRequest == nil || res.Actions == nil {
		t.Fatal("expected initialized maps and slices")
	}

	res.AddAction("first")
	res.AddAction("second")
	if !reflect.DeepEqual(res.Actions, []string{"first", "second"}) {
		t.Fatalf("expected append-only action trail, got %v", res.Actions)
	}
}
