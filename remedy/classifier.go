// Package remedy maps tool-error messages to coarse root causes and looks up
// the remediation policy for each cause. Classification and advice are kept
// separate so the policy table stays the sole decision surface for
// tool-error remediation.
package remedy

import (
	"strings"

	"github.com/hupe1980/remedymesh/core"
)

// Classify maps a tool-error message to a root cause via a priority-ordered,
// case-insensitive substring scan. The first matching rule wins; the result
// is a pure function of the message text.
func Classify(message string) core.Cause {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "timeout"):
		return core.CauseTimeout
	case strings.Contains(m, "network"):
		return core.CauseNetworkError
	case strings.Contains(m, "permission"):
		return core.CausePermissionDenied
	case strings.Contains(m, "rate") && strings.Contains(m, "limit"):
		return core.CauseRateLimit
	default:
		return core.CauseUnclassified
	}
}
