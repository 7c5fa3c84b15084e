package search

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishakbelle/pandor/core"
)

// sharedObsEnv has two distinct states, "s1" and "s2", that collapse to
// the same observation but disagree on which actions are legal: only "a"
// is legal in "s1", only "b" is legal in "s2".
type sharedObsEnv struct{}

func (sharedObsEnv) InitStates() []core.DistEntry { return []core.DistEntry{{State: "s1", Prob: 1}} }
func (sharedObsEnv) NextStates(core.EnvState, core.Action) ([]core.DistEntry, error) {
	return []core.DistEntry{{State: core.StateWin, Prob: 1}}, nil
}
func (sharedObsEnv) LegalActions(s core.EnvState) []core.Action {
	if s == "s1" {
		return []core.Action{"a"}
	}
	return []core.Action{"b"}
}
func (sharedObsEnv) IsGoalState(core.EnvState) bool                     { return false }
func (sharedObsEnv) Observation(core.EnvState) core.Observation         { return "shared" }

func TestOrStep_ReusedEdgeWithIllegalActionCreditsFailInsteadOfRecursing(t *testing.T) {
	ctx := NewContext(sharedObsEnv{}, 1, 0.5, zerolog.Nop())

	edge := core.Edge{State: 0, Observation: core.Observation("shared")}
	require.NoError(t, ctx.Ctrl.Set(edge, core.Transition{Next: 0, Action: "a"}))

	outcome, err := OrStep(ctx, 0, "s2", 1.0, core.History{})
	require.NoError(t, err)
	assert.Equal(t, Unknown, outcome)
	assert.InDelta(t, 1.0, ctx.Acc.Fail(0), 1e-12,
		"an illegal reused action must credit fail at this node's own depth, not recurse into NextStates")
	assert.Zero(t, ctx.Acc.Win(0))
}

func TestIsLegal(t *testing.T) {
	ctx := NewContext(sharedObsEnv{}, 1, 0.5, zerolog.Nop())

	assert.True(t, isLegal(ctx, "s1", "a"))
	assert.False(t, isLegal(ctx, "s1", "b"))
	assert.True(t, isLegal(ctx, "s1", core.ActionStop), "STOP is always legal regardless of state")
}
