package remedy

import (
	"testing"

	"github.com/hupe1980/remedymesh/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    core.Cause
	}{
		{name: "timeout", message: "Connection timeout after 30s", want: core.CauseTimeout},
		{name: "network", message: "network unreachable", want: core.CauseNetworkError},
		{name: "permission", message: "Permission denied for mailbox", want: core.CausePermissionDenied},
		{name: "rate limit", message: "API rate limit exceeded", want: core.CauseRateLimit},
		{name: "rate without limit stays unclassified", message: "error rate too high", want: core.CauseUnclassified},
		{name: "unclassified", message: "boom", want: core.CauseUnclassified},
		{name: "empty", message: "", want: core.CauseUnclassified},
		{name: "case insensitive", message: "TIMEOUT", want: core.CauseTimeout},
		// Priority: timeout rule fires before network when both match.
		{name: "priority order", message: "network timeout", want: core.CauseTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Fatalf("Classify(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}
