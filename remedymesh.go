// Package remedymesh provides a high-level façade over the remediation
// reasoning engine. Given a structured issue (a failed validation, a failed
// tool invocation, or a low-confidence result) and a bag of session context,
// it decides whether the issue can be resolved automatically and reports a
// corrected request plus an explanation trail, or escalates. Most
// applications interact with this package by:
//  1. Creating a RemedyMesh via New() (optionally supplying a logger,
//     an entity dictionary or a model-backed plan suggester)
//  2. Calling Resolve with a typed issue, or ResolveRaw with the mapping
//     shapes received over a transport boundary
//
// The façade delegates orchestration to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply a structured logger
// and a curated dictionary.
package remedymesh

import (
	"context"

	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/dictionary"
	"github.com/hupe1980/remedymesh/engine"
	"github.com/hupe1980/remedymesh/envinfo"
	"github.com/hupe1980/remedymesh/logging"
	"github.com/hupe1980/remedymesh/plan"
)

// Options configures the RemedyMesh instance.
type Options struct {
	// Engine configuration (iteration budget)
	EngineConfig engine.Config

	// MaxIterations bounds the dispatch loop per resolve call. When set it
	// overrides EngineConfig.MaxIterations. Out-of-range values are clamped
	// to [engine.MinIterations, engine.MaxIterations].
	MaxIterations int

	// Environment supplies diagnostic metadata for context normalization
	// (defaults to the OS probe if not provided)
	Environment envinfo.Provider

	// Dictionary supplies correction rules and synonyms for the validation
	// resolver (optional)
	Dictionary *dictionary.Dictionary

	// Suggester fills suggested_plan on escalated results (optional)
	Suggester plan.Suggester

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// RemedyMesh is the high-level façade aggregating the underlying engine.
type RemedyMesh struct {
	opts   Options
	engine core.Engine
}

// New creates a new RemedyMesh instance with optional overrides. Any unset
// dependency falls back to a safe default.
func New(optFns ...func(o *Options)) *RemedyMesh {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := opts.EngineConfig
	if opts.MaxIterations != 0 {
		cfg.MaxIterations = opts.MaxIterations
	}

	engineOpts := []func(o *engine.Options){
		engine.WithConfig(cfg),
		engine.WithLogger(opts.Logger),
		engine.WithDictionary(opts.Dictionary),
		engine.WithSuggester(opts.Suggester),
	}
	if opts.Environment != nil {
		engineOpts = append(engineOpts, engine.WithEnvironment(opts.Environment))
	}

	return &RemedyMesh{
		opts:   opts,
		engine: engine.New(engineOpts...),
	}
}

// Resolve runs the reasoning loop for a typed issue and session context.
func (r *RemedyMesh) Resolve(ctx context.Context, issue core.Issue, sessionCtx core.Context) core.ReasoningResult {
	return r.engine.Resolve(ctx, issue, sessionCtx)
}

// ResolveRaw accepts the mapping-shaped issue and context values a transport
// adapter hands over. Malformed shapes are reported in the result, never as
// a raised fault.
func (r *RemedyMesh) ResolveRaw(ctx context.Context, issue, sessionCtx any) core.ReasoningResult {
	return r.engine.ResolveRaw(ctx, issue, sessionCtx)
}

// Register installs or replaces the resolver for an issue type, enabling
// custom dispatch targets beyond the built-ins.
func (r *RemedyMesh) Register(t core.IssueType, res core.Resolver) {
	r.engine.Register(t, res)
}

// Engine exposes the underlying engine for advanced use cases.
func (r *RemedyMesh) Engine() core.Engine { return r.engine }
