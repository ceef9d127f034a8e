// Package engine implements the remediation reasoning loop: context
// normalization, resolver dispatch, bounded iteration with correction
// feedback, and escalation when the attempt budget runs out.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hupe1980/remedymesh/core"
	"github.com/hupe1980/remedymesh/dictionary"
	"github.com/hupe1980/remedymesh/envinfo"
	"github.com/hupe1980/remedymesh/logging"
	"github.com/hupe1980/remedymesh/plan"
	"github.com/hupe1980/remedymesh/resolver"
)

// Bounds for the iteration budget. Caller-supplied values outside this range
// are clamped at construction, never rejected.
const (
	// MinIterations is the smallest effective attempt budget.
	MinIterations = 1
	// MaxIterations is the largest effective attempt budget.
	MaxIterations = 10
)

// Config defines tuning parameters for the engine's operational behavior.
type Config struct {
	// MaxIterations bounds the dispatch loop per resolve call. Values
	// outside [MinIterations, MaxIterations] are clamped.
	MaxIterations int
}

// DefaultConfig provides production-ready default configuration values.
var DefaultConfig = Config{
	MaxIterations: 5,
}

// Options configures an Engine instance using the functional options pattern.
//
// Example:
//
//	eng := engine.New(
//	    engine.WithConfig(engine.Config{MaxIterations: 3}),
//	    engine.WithLogger(myLogger),
//	)
type Options struct {
	// Config contains operational parameters for the engine behavior.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger

	// Environment supplies best-effort diagnostic metadata injected during
	// context normalization. Defaults to the OS probe.
	Environment envinfo.Provider

	// Dictionary supplies correction rules and synonym expansions for the
	// validation resolver. Optional.
	Dictionary *dictionary.Dictionary

	// Suggester fills the suggested_plan of escalated results. Optional;
	// plan suggestion is best-effort and never affects the verdict.
	Suggester plan.Suggester
}

// WithConfig overrides the engine configuration.
func WithConfig(cfg Config) func(o *Options) {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// WithEnvironment sets the environment metadata provider.
func WithEnvironment(p envinfo.Provider) func(o *Options) {
	return func(o *Options) { o.Environment = p }
}

// WithDictionary sets the entity dictionary for the validation resolver.
func WithDictionary(d *dictionary.Dictionary) func(o *Options) {
	return func(o *Options) { o.Dictionary = d }
}

// WithSuggester sets the plan suggester consulted on escalation.
func WithSuggester(s plan.Suggester) func(o *Options) {
	return func(o *Options) { o.Suggester = s }
}

// phase identifies a state of the resolve state machine. Phases exist for
// observability; transitions are logged at debug level.
type phase string

const (
	phaseNormalizing phase = "normalizing"
	phaseDispatching phase = "dispatching"
	phaseIterating   phase = "iterating"
	phaseResolved    phase = "resolved"
	phaseEscalated   phase = "escalated"
	phaseFailed      phase = "failed"
)

// Engine is the synchronous remediation reasoning core. One Resolve call
// runs to completion, bounded purely by the clamped iteration cap; there is
// no background work and no state shared across invocations, so concurrent
// calls with distinct inputs are safe.
type Engine struct {
	config     Config
	logger     logging.Logger
	env        envinfo.Provider
	suggester  plan.Suggester
	unknown    core.Resolver
	resolvers  map[core.IssueType]core.Resolver
	resolverMu sync.RWMutex
}

// New creates an Engine with the built-in resolvers registered. All
// defaults are safe for local development and testing; supply options for a
// structured logger, a dictionary or a plan suggester.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config:      DefaultConfig,
		Logger:      logging.NoOpLogger{},
		Environment: envinfo.OSProvider{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Engine{
		config:    clamp(opts.Config),
		logger:    opts.Logger,
		env:       opts.Environment,
		suggester: opts.Suggester,
		unknown:   resolver.NewUnknown(),
		resolvers: make(map[core.IssueType]core.Resolver),
	}

	e.Register(core.IssueValidationFailure, resolver.NewValidation(func(o *resolver.ValidationOptions) {
		o.Dictionary = opts.Dictionary
	}))
	e.Register(core.IssueToolError, resolver.NewToolError())
	e.Register(core.IssueLowConfidence, resolver.NewLowConfidence())

	return e
}

func clamp(cfg Config) Config {
	if cfg.MaxIterations < MinIterations {
		cfg.MaxIterations = MinIterations
	}
	if cfg.MaxIterations > MaxIterations {
		cfg.MaxIterations = MaxIterations
	}
	return cfg
}

// Config returns the effective (clamped) configuration.
func (e *Engine) Config() Config { return e.config }

// Register installs or replaces the resolver for an issue type. Types
// without a registered resolver fall through to the unknown-type resolver.
func (e *Engine) Register(t core.IssueType, r core.Resolver) {
	e.resolverMu.Lock()
	defer e.resolverMu.Unlock()
	e.resolvers[t] = r
}

func (e *Engine) resolverFor(t core.IssueType) core.Resolver {
	e.resolverMu.RLock()
	defer e.resolverMu.RUnlock()
	if r, ok := e.resolvers[t]; ok {
		return r
	}
	return e.unknown
}

// ResolveRaw accepts arbitrary mapping-shaped values as supplied over a
// transport boundary. Malformed shapes are reported as the final resolution
// text; the loop never starts for them. Implements core.Engine.
func (e *Engine) ResolveRaw(ctx context.Context, issue, sessionCtx any) core.ReasoningResult {
	parsedIssue, err := core.IssueFromMap(issue)
	if err != nil {
		return e.failure(err)
	}
	parsedCtx, err := core.ContextFromMap(sessionCtx)
	if err != nil {
		return e.failure(err)
	}
	return e.Resolve(ctx, parsedIssue, parsedCtx)
}

// Resolve runs the reasoning loop for a typed issue. It always returns a
// fully populated result and never propagates a resolver fault. Implements
// core.Engine.
func (e *Engine) Resolve(ctx context.Context, issue core.Issue, sessionCtx core.Context) core.ReasoningResult {
	resolutionID := uuid.NewString()
	e.logger.Info("Internal reasoning triggered", "resolution_id", resolutionID, "issue_type", string(issue.Type))

	e.transition(resolutionID, phaseNormalizing)
	normalized := e.Normalize(sessionCtx)

	// Explicit accumulator: corrections are folded into a private working
	// copy between rounds, never into the caller's issue.
	working := issue.Clone()
	result := core.NewReasoningResult()

	for i := 0; i < e.config.MaxIterations; i++ {
		e.transition(resolutionID, phaseDispatching)
		res, err := e.dispatch(ctx, working, normalized)
		if err != nil {
			e.transition(resolutionID, phaseFailed)
			e.logger.Error("Internal reasoning failure", "resolution_id", resolutionID, "error", err.Error())
			return e.failure(err)
		}

		result = res
		if res.Resolved {
			e.transition(resolutionID, phaseResolved)
			return result
		}

		if len(res.UpdatedRequest) > 0 {
			working = working.Merge(res.UpdatedRequest)
		}
		e.transition(resolutionID, phaseIterating)
	}

	e.transition(resolutionID, phaseEscalated)
	result.Resolution = fmt.Sprintf("Escalation required after %d attempts", e.config.MaxIterations)
	result.AddAction("Escalated to human review")
	e.suggestPlan(ctx, resolutionID, working, &result)

	return result
}

// dispatch runs the resolver for the working issue's type. A recover guard
// converts resolver panics into the fault error class so Resolve can never
// panic outward.
func (e *Engine) dispatch(ctx context.Context, issue core.Issue, sessionCtx core.Context) (res core.ReasoningResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolver panic: %v", r)
		}
	}()
	return e.resolverFor(issue.Type).Resolve(ctx, issue, sessionCtx)
}

// suggestPlan fills the suggested plan on escalated results, best-effort.
func (e *Engine) suggestPlan(ctx context.Context, resolutionID string, issue core.Issue, result *core.ReasoningResult) {
	if e.suggester == nil {
		return
	}
	p, err := e.suggester.SuggestPlan(ctx, issue, *result)
	if err != nil {
		e.logger.Warn("Plan suggestion failed", "resolution_id", resolutionID, "error", err.Error())
		return
	}
	result.SuggestedPlan = p
}

// failure renders a fault or boundary error as an unresolved result.
func (e *Engine) failure(err error) core.ReasoningResult {
	res := core.NewReasoningResult()
	res.Resolution = err.Error()
	return res
}

func (e *Engine) transition(resolutionID string, p phase) {
	e.logger.Debug("Reasoning phase transition", "resolution_id", resolutionID, "phase", string(p))
}
