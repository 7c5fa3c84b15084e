package planner

import (
	"github.com/vaishakbelle/pandor/controller"
	"github.com/vaishakbelle/pandor/env"
	"github.com/vaishakbelle/pandor/search"
)

// Stats are the counters the search accumulates along the way to a
// verdict, regardless of whether it found a controller.
type Stats struct {
	NumSteps        uint64
	NumBacktracking uint64
}

// Result is the outcome of a successful Plan call: the synthesized
// Mealy-machine controller plus the statistics the search accumulated
// producing it.
type Result struct {
	Controller *controller.Controller
	Stats      Stats
}

// Plan searches for a Mealy-machine controller over e, bounded to at most
// statesBound states, whose closed-loop likelihood of reaching a goal
// state is at least lpcDesired. It returns the controller and statistics
// on success, or nil and ErrNotFound if no such controller exists within
// the bound.
//
// lpcDesired must be in [0, 1) — a hard precondition for numerical
// stability in the λ-evaluator's self-loop fixpoint correction.
func Plan(e env.Environment, statesBound int, lpcDesired float64, opts ...Option) (*Result, error) {
	if statesBound < 1 {
		return nil, ErrBoundTooSmall
	}
	if lpcDesired < 0 {
		return nil, ErrLPCNegative
	}
	if lpcDesired >= 1.0 {
		return nil, ErrLPCTooHigh
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	metrics := newPlanMetrics(cfg.registerer)

	ctx := search.NewContext(e, statesBound, lpcDesired, cfg.logger)
	outcome, err := search.Run(ctx)

	stats := Stats{NumSteps: ctx.NumSteps, NumBacktracking: ctx.NumBacktracking}
	metrics.observe(stats)

	if err != nil {
		ctx.Log.Error().Err(err).Msg("search aborted")
		return nil, err
	}

	switch outcome {
	case search.Found:
		ctx.Log.Info().
			Uint64("steps", stats.NumSteps).
			Uint64("backtracks", stats.NumBacktracking).
			Msg("controller found")
		return &Result{Controller: ctx.Ctrl, Stats: stats}, nil

	case search.NotFound:
		ctx.Log.Warn().
			Int("bound", statesBound).
			Float64("lpc_desired", lpcDesired).
			Uint64("backtracks", stats.NumBacktracking).
			Msg("no controller satisfies the desired likelihood within bound")
		return nil, ErrNotFound

	default:
		return nil, ErrUnresolvedSearch
	}
}
