package planner

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishakbelle/pandor/core"
)

// singleActionEnv reaches a goal state after exactly one legal action,
// regardless of which controller state issued it.
type singleActionEnv struct{}

func (singleActionEnv) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: "s0", Prob: 1}}
}
func (singleActionEnv) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	return []core.DistEntry{{State: "goal", Prob: 1}}, nil
}
func (singleActionEnv) LegalActions(s core.EnvState) []core.Action {
	if s == "goal" {
		return nil
	}
	return []core.Action{"a0"}
}
func (singleActionEnv) IsGoalState(s core.EnvState) bool          { return s == "goal" }
func (singleActionEnv) Observation(s core.EnvState) core.Observation { return s }

// capped07Env can never close the loop with likelihood above 0.7: one
// branch ("good", 0.7) reaches a goal immediately, the other ("bad", 0.3)
// never does, and neither offers any action besides the implicit STOP.
type capped07Env struct{}

func (capped07Env) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: "good", Prob: 0.7}, {State: "bad", Prob: 0.3}}
}
func (capped07Env) NextStates(core.EnvState, core.Action) ([]core.DistEntry, error) { return nil, nil }
func (capped07Env) LegalActions(core.EnvState) []core.Action                       { return nil }
func (capped07Env) IsGoalState(s core.EnvState) bool                               { return s == "good" }
func (capped07Env) Observation(s core.EnvState) core.Observation                   { return s }

func TestPlan_RejectsLPCAtOrAboveOne(t *testing.T) {
	_, err := Plan(singleActionEnv{}, 1, 1.0)
	assert.ErrorIs(t, err, ErrLPCTooHigh)
}

func TestPlan_RejectsNegativeLPC(t *testing.T) {
	_, err := Plan(singleActionEnv{}, 1, -0.1)
	assert.ErrorIs(t, err, ErrLPCNegative)
}

func TestPlan_RejectsZeroBound(t *testing.T) {
	_, err := Plan(singleActionEnv{}, 0, 0.5)
	assert.ErrorIs(t, err, ErrBoundTooSmall)
}

func TestPlan_FindsControllerForSingleActionGoal(t *testing.T) {
	reg := prometheus.NewRegistry()
	result, err := Plan(singleActionEnv{}, 1, 0.99, WithRegisterer(reg))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotZero(t, result.Controller.Len())

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestPlan_RepeatedCallsShareRegistererWithoutPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := Plan(singleActionEnv{}, 1, 0.99, WithRegisterer(reg))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err := Plan(singleActionEnv{}, 1, 0.99, WithRegisterer(reg))
		require.NoError(t, err)
	})
}

func TestPlan_ReturnsErrNotFoundWhenUnsatisfiable(t *testing.T) {
	reg := prometheus.NewRegistry()
	result, err := Plan(capped07Env{}, 1, 0.75, WithRegisterer(reg))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestWithRegisterer_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { WithRegisterer(nil) })
}
