package engine

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/envinfo"
)

func TestNormalize_DropsNilAndEmptyMappings(t *testing.T) {
	eng := newTestEngine()
	in := core.Context{
		"Keep":     "value",
		"Nothing":  nil,
		"EmptyMap": map[string]any{},
		"FullMap":  map[string]any{"a": 1},
	}

	out := eng.Normalize(in)

	if _, ok := out["Nothing"]; ok {
		t.Fatal("nil value must be dropped")
	}
	if _, ok := out["EmptyMap"]; ok {
		t.Fatal("empty mapping must be dropped")
	}
	if out["Keep"] != "value" {
		t.Fatal("scalar value must survive")
	}
	if _, ok := out["FullMap"]; !ok {
		t.Fatal("non-empty mapping must survive")
	}
}

func TestNormalize_DedupesPreservingOrder(t *testing.T) {
	eng := newTestEngine()
	in := core.Context{
		"KnownUsers": []string{"b", "a", "b", "c", "a"},
	}

	out := eng.Normalize(in)

	want := []string{"b", "a", "c"}
	if got := out.KnownUsers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalize_CapsToMostRecentEntries(t *testing.T) {
	eng := newTestEngine()
	users := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		users = append(users, fmt.Sprintf("user_%02d", i))
	}

	out := eng.Normalize(core.Context{"KnownUsers": users})

	got := out.KnownUsers()
	if len(got) != maxListEntries {
		t.Fatalf("expected %d entries, got %d", maxListEntries, len(got))
	}
	if got[0] != "user_10" || got[len(got)-1] != "user_59" {
		t.Fatalf("expected the most recent entries, got first=%q last=%q", got[0], got[len(got)-1])
	}
}

func TestNormalize_InjectsEnvironment(t *testing.T) {
	eng := newTestEngine() // static snapshot with hostname only

	out := eng.Normalize(core.Context{})

	env, ok := out[core.KeyEnvironment].(map[string]any)
	if !ok {
		t.Fatalf("expected environment sub-mapping, got %#v", out[core.KeyEnvironment])
	}
	if env[envinfo.FieldHostname] != "test-host" {
		t.Fatalf("unexpected environment: %v", env)
	}
	if _, ok := env[envinfo.FieldUser]; ok {
		t.Fatal("unavailable fields must not be injected")
	}
}

func TestNormalize_EmptyEnvironmentNotInjected(t *testing.T) {
	eng := New(WithEnvironment(envinfo.Static{}))

	out := eng.Normalize(core.Context{})
	if _, ok := out[core.KeyEnvironment]; ok {
		t.Fatal("an all-missing probe must not inject an empty mapping")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	eng := newTestEngine()
	in := core.Context{
		"KnownUsers":     []string{"a", "b"},
		"KnownMailboxes": []any{"x", "y"},
		"Scalar":         42,
	}

	once := eng.Normalize(in)
	twice := eng.Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestNormalize_InputUntouched(t *testing.T) {
	eng := newTestEngine()
	in := core.Context{"KnownUsers": []string{"a", "a"}}

	eng.Normalize(in)

	if len(in["KnownUsers"].([]string)) != 2 {
		t.Fatal("normalization must not mutate the caller's context")
	}
}
