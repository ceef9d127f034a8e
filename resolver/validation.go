package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/dictionary"
	"github.com/hupe1980/remedymesh/extract"
)

// ValidationOptions configures the validation-failure resolver.
type ValidationOptions struct {
	// Dictionary supplies correction rules and synonym expansions applied
	// before fuzzy matching. Optional.
	Dictionary *dictionary.Dictionary
}

// Validation corrects identifier-level validation failures by extracting a
// likely entity from each error message and fuzzy-matching it against the
// session's known users and mailboxes.
type Validation struct {
	opts ValidationOptions
}

// NewValidation creates the validation-failure resolver.
func NewValidation(optFns ...func(o *ValidationOptions)) *Validation {
	opts := ValidationOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Validation{opts: opts}
}

// Resolve implements core.Resolver.
//
// Warnings without errors are acknowledged immediately. Otherwise each error
// mentioning "user" or "mailbox" yields an extraction + fuzzy-match attempt
// against the matching candidate list. Every hit is recorded as
// original -> suggestion under the "Corrections" key of the updated request;
// later hits for the same identifier overwrite earlier ones.
func (r *Validation) Resolve(_ context.Context, issue core.Issue, sessionCtx core.Context) (core.ReasoningResult, error) {
	res := core.NewReasoningResult()

	var errs, warnings []string
	if issue.Validation != nil {
		errs = issue.Validation.Errors
		warnings = issue.Validation.Warnings
	}

	if len(errs) == 0 && len(warnings) > 0 {
		res.Resolved = true
		res.Resolution = "Validation warnings acknowledged"
		return res, nil
	}

	users, userCanon := r.expand(sessionCtx.KnownUsers())
	mailboxes, mailboxCanon := r.expand(sessionCtx.KnownMailboxes())

	corrections := map[string]any{}
	for _, e := range errs {
		lower := strings.ToLower(e)
		if strings.Contains(lower, "user") {
			r.correct(e, users, userCanon, corrections, &res)
		}
		if strings.Contains(lower, "mailbox") {
			r.correct(e, mailboxes, mailboxCanon, corrections, &res)
		}
	}

	if len(corrections) > 0 {
		res.Resolved = true
		res.Resolution = "Validation errors corrected"
		res.UpdatedRequest["Corrections"] = corrections
		return res, nil
	}

	res.Resolution = "Unable to auto-resolve validation errors"
	res.AddAction("Validation errors: " + strings.Join(errs, "; "))
	return res, nil
}

// correct extracts an identifier from one error message and records a fuzzy
// match when a candidate clears the threshold.
func (r *Validation) correct(errText string, pool []string, canonical map[string]string, corrections map[string]any, res *core.ReasoningResult) {
	ident := extract.Identifier(errText)
	if ident == "" {
		return
	}
	cleaned := r.opts.Dictionary.Apply(ident)

	match, ok := extract.Suggest(cleaned, pool)
	if !ok {
		return
	}
	if canon, mapped := canonical[match]; mapped {
		match = canon
	}
	corrections[ident] = match
	res.AddAction(fmt.Sprintf("Corrected %q to %q", ident, match))
}

func (r *Validation) expand(candidates []string) ([]string, map[string]string) {
	return r.opts.Dictionary.Expand(candidates)
}
