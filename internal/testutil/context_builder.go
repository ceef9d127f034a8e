package testutil

import (
	"github.com/hupe1980/remedymesh/core"
)

// ContextBuilder helps construct session contexts with fluent chaining for
// tests. Example:
//
//	ctx := NewContextBuilder().KnownUsers("bob.smith@example.gov").Build()
type ContextBuilder struct {
	values map[string]any
}

// NewContextBuilder creates a new builder for an empty session context.
func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{values: map[string]any{}}
}

// KnownUsers appends known-good user identifiers (chainable).
func (b *ContextBuilder) KnownUsers(users ...string) *ContextBuilder {
	return b.appendList(core.KeyKnownUsers, users)
}

// KnownMailboxes appends known-good mailbox identifiers (chainable).
func (b *ContextBuilder) KnownMailboxes(mailboxes ...string) *ContextBuilder {
	return b.appendList(core.KeyKnownMailboxes, mailboxes)
}

// Value sets or overwrites an arbitrary context key (chainable).
func (b *ContextBuilder) Value(key string, val any) *ContextBuilder {
	b.values[key] = val
	return b
}

// Build returns the constructed core.Context.
func (b *ContextBuilder) Build() core.Context {
	out := make(core.Context, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

func (b *ContextBuilder) appendList(key string, items []string) *ContextBuilder {
	existing, _ := b.values[key].([]string)
	b.values[key] = append(existing, items...)
	return b
}
