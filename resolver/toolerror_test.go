package resolver

import (
	"context"
	"testing"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolError_TimeoutAutoResolves(t *testing.T) {
	issue := testutil.NewIssueBuilder(core.IssueToolError).
		Error("Connection timeout").
		Build()

	res, err := NewToolError().Resolve(context.Background(), issue, core.Context{})
	require.NoError(t, err)

	assert.True(t, res.Resolved)
	assert.Equal(t, "Automatic remediation suggested", res.Resolution)
	assert.Contains(t, res.Actions, "Error: Connection timeout")
	assert.Contains(t, res.Actions, "Root cause: Timeout")
	assert.Contains(t, res.Actions, "Retry with backoff")
}

func TestToolError_PermissionDeniedEscalates(t *testing.T) {
	issue := testutil.NewIssueBuilder(core.IssueToolError).
		Error("permission denied for shared_mailbox_01").
		Build()

	res, err := NewToolError().Resolve(context.Background(), issue, core.Context{})
	require.NoError(t, err)

	assert.False(t, res.Resolved)
	assert.Contains(t, res.Actions, "Root cause: PermissionDenied")
	assert.Contains(t, res.Actions, "Verify permissions or escalate")
}

func TestToolError_UnclassifiedFallsBack(t *testing.T) {
	issue := testutil.NewIssueBuilder(core.IssueToolError).
		Error("boom").
		Build()

	res, err := NewToolError().Resolve(context.Background(), issue, core.Context{})
	require.NoError(t, err)

	assert.False(t, res.Resolved)
	assert.Contains(t, res.Actions, "Root cause: Unclassified")
	assert.Contains(t, res.Actions, "Escalate to human operator")
}
