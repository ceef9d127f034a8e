package remedy

import "github.com/hupe1980/remedymesh/core"

// Advice pairs an auto-resolution verdict with the remediation steps to
// report for a root cause.
type Advice struct {
	AutoResolved bool
	Actions      []string
}

// policy is the sole decision surface for tool-error remediation. Extending
// it to new causes means adding rows, not new control flow.
var policy = map[core.Cause]Advice{
	core.CauseTimeout:          {AutoResolved: true, Actions: []string{"Retry with backoff"}},
	core.CauseNetworkError:     {AutoResolved: true, Actions: []string{"Check connectivity and retry"}},
	core.CausePermissionDenied: {AutoResolved: false, Actions: []string{"Verify permissions or escalate"}},
	core.CauseRateLimit:        {AutoResolved: false, Actions: []string{"Wait before retrying"}},
}

var fallback = Advice{AutoResolved: false, Actions: []string{"Escalate to human operator"}}

// Advise looks up the remediation policy for a cause. Unclassified and any
// future cause without a row fall back to the escalate-to-operator policy.
// The returned Actions slice is a copy; callers may append freely.
func Advise(cause core.Cause) Advice {
	adv, ok := policy[cause]
	if !ok {
		adv = fallback
	}
	return Advice{
		AutoResolved: adv.AutoResolved,
		Actions:      append([]string(nil), adv.Actions...),
	}
}
