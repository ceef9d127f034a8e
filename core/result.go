package core

// ReasoningResult is the outcome of a resolve call. Every invocation returns
// a fully populated value: UpdatedRequest and Actions are never nil, so the
// result is always JSON-serializable as-is.
//
// Contract:
//   - Actions is append-only within a single resolver invocation
//   - UpdatedRequest keys, once merged into the working issue, persist
//     across remaining dispatch rounds
//   - SuggestedPlan is optional and unused by the built-in resolvers; it is
//     part of the contract for future resolvers and the plan suggester
type ReasoningResult struct {
	Resolved       bool           `json:"resolved"`
	Resolution     string         `json:"resolution"`
	UpdatedRequest map[string]any `json:"updated_request"`
	Actions        []string       `json:"actions"`
	SuggestedPlan  map[string]any `json:"suggested_plan,omitempty"`
}

// NewReasoningResult creates an empty, fully initialized result.
func NewReasoningResult() ReasoningResult {
	return ReasoningResult{
		UpdatedRequest: map[string]any{},
		Actions:        []string{},
	}
}

// AddAction appends a human-readable explanation step to the trail.
func (r *ReasoningResult) AddAction(action string) {
	r.Actions = append(r.Actions, action)
}
