package core

import "fmt"

// Well-known context keys consumed by the built-in resolvers.
const (
	// KeyKnownUsers holds the ordered list of known-good user identifiers.
	KeyKnownUsers = "KnownUsers"
	// KeyKnownMailboxes holds the ordered list of known-good mailbox identifiers.
	KeyKnownMailboxes = "KnownMailboxes"
	// KeyEnvironment is the sub-mapping of best-effort diagnostic metadata
	// injected during normalization.
	KeyEnvironment = "environment"
)

// Context is the session-scoped knowledge bag supplied by the caller per
// invocation: known-good entities, environment facts and arbitrary
// extension values. Each resolve call receives its own value; the engine
// never shares a Context across invocations.
type Context map[string]any

// StringList reads a list-valued key, coercing []any elements to strings.
// Missing or non-list keys yield nil.
func (c Context) StringList(key string) []string {
	v, ok := c[key]
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
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

// KnownUsers returns the fuzzy-match candidate list for user identifiers.
func (c Context) KnownUsers() []string { return c.StringList(KeyKnownUsers) }

// KnownMailboxes returns the fuzzy-match candidate list for mailbox identifiers.
func (c Context) KnownMailboxes() []string { return c.StringList(KeyKnownMailboxes) }

// ContextFromMap decodes a raw caller-supplied value into a Context. A value
// that is not a mapping is the only checked error class at the boundary.
func ContextFromMap(v any) (Context, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("context: %w", ErrNotMapping)
	}
	return Context(m), nil
}
