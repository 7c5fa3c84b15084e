package search

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishakbelle/pandor/core"
	"github.com/vaishakbelle/pandor/env"
)

// winEnv always lands on core.StateWin from its single initial state.
type winEnv struct{}

func (winEnv) InitStates() []core.DistEntry { return []core.DistEntry{{State: core.StateWin, Prob: 1}} }
func (winEnv) NextStates(core.EnvState, core.Action) ([]core.DistEntry, error) { return nil, nil }
func (winEnv) LegalActions(core.EnvState) []core.Action                       { return nil }
func (winEnv) IsGoalState(core.EnvState) bool                                 { return false }
func (winEnv) Observation(s core.EnvState) core.Observation                   { return s }

// failEnv always lands on core.StateFail from its single initial state.
type failEnv struct{}

func (failEnv) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: core.StateFail, Prob: 1}}
}
func (failEnv) NextStates(core.EnvState, core.Action) ([]core.DistEntry, error) { return nil, nil }
func (failEnv) LegalActions(core.EnvState) []core.Action                       { return nil }
func (failEnv) IsGoalState(core.EnvState) bool                                 { return false }
func (failEnv) Observation(s core.EnvState) core.Observation                   { return s }

// branchEnv has two initial states, "good" (0.7) and "bad" (0.3). "good" is
// a goal state (STOP there wins); "bad" is not (STOP there fails). Neither
// has any legal action besides the implicit STOP, so no real controller
// choice exists — its true likelihood of completion is fixed at 0.7.
type branchEnv struct{}

func (branchEnv) InitStates() []core.DistEntry {
	return []core.DistEntry{
		{State: "good", Prob: 0.7},
		{State: "bad", Prob: 0.3},
	}
}
func (branchEnv) NextStates(core.EnvState, core.Action) ([]core.DistEntry, error) { return nil, nil }
func (branchEnv) LegalActions(core.EnvState) []core.Action                       { return nil }
func (branchEnv) IsGoalState(s core.EnvState) bool                               { return s == "good" }
func (branchEnv) Observation(s core.EnvState) core.Observation                   { return s }

// loopEnv has a single initial state, "loop", that never reaches a goal:
// its only action, "spin", always returns to "loop" with probability 1, and
// STOP there always fails. No controller at any bound can win here.
type loopEnv struct{}

func (loopEnv) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: "loop", Prob: 1}}
}
func (loopEnv) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	return []core.DistEntry{{State: "loop", Prob: 1}}, nil
}
func (loopEnv) LegalActions(core.EnvState) []core.Action { return []core.Action{"spin"} }
func (loopEnv) IsGoalState(core.EnvState) bool            { return false }
func (loopEnv) Observation(s core.EnvState) core.Observation { return s }

func newCtx(e env.Environment, numStates int, lpc float64) *Context {
	return NewContext(e, numStates, lpc, zerolog.Nop())
}

func TestRun_ImmediateWin(t *testing.T) {
	ctx := newCtx(winEnv{}, 1, 0.5)
	outcome, err := Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Found, outcome)
	assert.Zero(t, ctx.NumBacktracking)
}

func TestRun_ImmediateFail(t *testing.T) {
	ctx := newCtx(failEnv{}, 1, 0.5)
	outcome, err := Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome)
}

func TestRun_BranchingEnvironment_FoundBelowTrueLikelihood(t *testing.T) {
	ctx := newCtx(branchEnv{}, 1, 0.5)
	outcome, err := Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Found, outcome, "0.7 likelihood of completion clears a 0.5 target")
}

func TestRun_BranchingEnvironment_NotFoundAboveTrueLikelihood(t *testing.T) {
	ctx := newCtx(branchEnv{}, 1, 0.75)
	outcome, err := Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome, "no bound-1 controller beats the environment's fixed 0.7 ceiling")
}

func TestRun_PureCycleNeverWins(t *testing.T) {
	ctx := newCtx(loopEnv{}, 2, 0.01)
	outcome, err := Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome)
}
