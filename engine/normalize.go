package engine

import (
	"fmt"

	"github.com/hupe1980/remedymesh/core"
)

// maxListEntries caps every list value in a normalized context.
const maxListEntries = 50

// Normalize applies the session-context normalization rules once per
// resolve call: nil values are dropped, list values are deduplicated
// preserving first-seen order and capped to the most recent entries, empty
// sub-mappings are dropped, and the environment sub-mapping is injected from
// the configured provider. The input context is left untouched.
//
// Normalizing an already-normalized context yields an equal mapping aside
// from a refreshed environment sub-mapping.
func (e *Engine) Normalize(sessionCtx core.Context) core.Context {
	out := make(core.Context, len(sessionCtx)+1)
	for k, v := range sessionCtx {
		if k == core.KeyEnvironment {
			continue // refreshed below
		}
		switch val := v.(type) {
		case nil:
			continue
		case []string:
			out[k] = capList(dedupeStrings(val))
		case []any:
			out[k] = capList(dedupeAny(val))
		case map[string]any:
			if len(val) == 0 {
				continue
			}
			out[k] = val
		case core.Context:
			if len(val) == 0 {
				continue
			}
			out[k] = val
		default:
			out[k] = v
		}
	}

	if env := e.env.Snapshot().Map(); len(env) > 0 {
		out[core.KeyEnvironment] = env
	}

	return out
}

// dedupeStrings removes duplicates preserving first-seen order.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// dedupeAny removes duplicates by rendered value, preserving first-seen
// order. Rendering sidesteps non-comparable list elements.
func dedupeAny(in []any) []any {
	seen := make(map[string]struct{}, len(in))
	out := make([]any, 0, len(in))
	for _, v := range in {
		key := fmt.Sprintf("%v", v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// capList keeps the most recent entries when a list exceeds the cap.
func capList[T any](in []T) []T {
	if len(in) <= maxListEntries {
		return in
	}
	return in[len(in)-maxListEntries:]
}
