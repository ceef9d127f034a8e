package core

// Cause is the coarse root-cause classification of a tool-error message.
// The set is small and fixed; CauseUnclassified is an explicit variant
// rather than an absent value so the remediation policy table always has a
// row to consult.
type Cause string

const (
	// CauseTimeout indicates the operation exceeded a time budget.
	CauseTimeout Cause = "Timeout"
	// CauseNetworkError indicates a connectivity problem.
	CauseNetworkError Cause = "NetworkError"
	// CausePermissionDenied indicates missing authorization.
	CausePermissionDenied Cause = "PermissionDenied"
	// CauseRateLimit indicates the caller was throttled.
	CauseRateLimit Cause = "RateLimit"
	// CauseUnclassified is the fallback when no rule matches.
	CauseUnclassified Cause = "Unclassified"
)
