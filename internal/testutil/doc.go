// Package testutil provides fluent builders for constructing issues and
// session contexts in tests. It is internal; production code must not
// depend on it.
package testutil
