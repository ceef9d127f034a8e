package plan

import (
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := "Restore mailbox access for bob.smith\n" +
		"1. Verify the account is not locked\n" +
		"2. Re-run the validation\n" +
		"- Notify the requester\n"

	plan := Parse(text, 6)
	require.NotNil(t, plan)
	assert.Equal(t, "Restore mailbox access for bob.smith", plan["summary"])
	assert.Equal(t, []string{
		"Verify the account is not locked",
		"Re-run the validation",
		"Notify the requester",
	}, plan["steps"])
}

func TestParse_CapsSteps(t *testing.T) {
	text := "summary line\n- a\n- b\n- c\n"
	plan := Parse(text, 2)
	require.NotNil(t, plan)
	assert.Equal(t, []string{"a", "b"}, plan["steps"])
}

func TestParse_EmptyOutput(t *testing.T) {
	assert.Nil(t, Parse("", 6))
	assert.Nil(t, Parse("\n  \n", 6))
}

func TestParse_SummaryOnly(t *testing.T) {
	plan := Parse("Just do the thing", 6)
	require.NotNil(t, plan)
	assert.Equal(t, "Just do the thing", plan["summary"])
	_, hasSteps := plan["steps"]
	assert.False(t, hasSteps)
}

func TestModelSuggester_SuggestPlan(t *testing.T) {
	issue := core.Issue{Type: core.IssueToolError, Error: "permission denied"}
	result := core.NewReasoningResult()
	result.AddAction("Root cause: PermissionDenied")

	mock := model.NewMockModel("planner", "mock")
	mock.AddResponse(buildPrompt(issue, result), "Grant access\n- File an access request\n- Retry the tool call\n")

	s := NewModelSuggester(mock)
	plan, err := s.SuggestPlan(context.Background(), issue, result)
	require.NoError(t, err)

	assert.Equal(t, "Grant access", plan["summary"])
	assert.Equal(t, []string{"File an access request", "Retry the tool call"}, plan["steps"])
}

func TestBuildPrompt(t *testing.T) {
	issue := core.Issue{
		Type:       core.IssueValidationFailure,
		Validation: &core.ValidationResult{Errors: []string{"user x not found"}},
	}
	result := core.NewReasoningResult()
	result.AddAction("Validation errors: user x not found")

	prompt := buildPrompt(issue, result)
	assert.True(t, strings.Contains(prompt, "ValidationFailure"))
	assert.True(t, strings.Contains(prompt, "user x not found"))
}
