package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishakbelle/pandor/core"
)

func TestController_NumStatesEmpty(t *testing.T) {
	c := New(4)
	assert.Equal(t, 1, c.NumStates())
	assert.Equal(t, core.ControllerState(0), c.InitState())
}

func TestController_SetGetPopLast(t *testing.T) {
	c := New(4)
	e1 := core.Edge{State: 0, Observation: "o0"}
	require.NoError(t, c.Set(e1, core.Transition{Next: 1, Action: "a0"}))
	assert.Equal(t, 2, c.NumStates())

	tr, ok := c.Get(e1)
	require.True(t, ok)
	assert.Equal(t, core.ControllerState(1), tr.Next)

	e2 := core.Edge{State: 1, Observation: "o1"}
	require.NoError(t, c.Set(e2, core.Transition{Next: 1, Action: "a1"}))
	assert.Equal(t, 2, c.Len())

	poppedEdge, poppedTr, err := c.PopLast()
	require.NoError(t, err)
	assert.Equal(t, e2, poppedEdge)
	assert.Equal(t, core.Action("a1"), poppedTr.Action)
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Has(e2))
}

func TestController_SetPreservesInsertionOrderOnOverwrite(t *testing.T) {
	c := New(4)
	e1 := core.Edge{State: 0, Observation: "o0"}
	e2 := core.Edge{State: 0, Observation: "o1"}
	require.NoError(t, c.Set(e1, core.Transition{Next: 1, Action: "a"}))
	require.NoError(t, c.Set(e2, core.Transition{Next: 1, Action: "a"}))
	// overwrite e1; its position among c.order must not move to the back.
	require.NoError(t, c.Set(e1, core.Transition{Next: 1, Action: "b"}))

	poppedEdge, _, err := c.PopLast()
	require.NoError(t, err)
	assert.Equal(t, e2, poppedEdge, "overwriting e1 must not reorder insertion history")
}

func TestController_SetRejectsOutOfBound(t *testing.T) {
	c := New(2)
	err := c.Set(core.Edge{State: 5, Observation: "o"}, core.Transition{Next: 0, Action: "a"})
	assert.True(t, errors.Is(err, core.ErrStateOutOfBound))

	err = c.Set(core.Edge{State: 0, Observation: "o"}, core.Transition{Next: 2, Action: "a"})
	assert.True(t, errors.Is(err, core.ErrNextStateOutOfBound), "Next == bound must be rejected")
}

func TestController_PopLastOnEmpty(t *testing.T) {
	c := New(2)
	_, _, err := c.PopLast()
	assert.ErrorIs(t, err, ErrPopOnEmpty)
}

func TestController_IteratorSlot(t *testing.T) {
	c := New(4)
	edge := core.Edge{State: 0, Observation: "o"}
	assert.False(t, c.HasIterator(edge))

	candidates := []core.Transition{{Next: 0, Action: "a"}, {Next: 0, Action: "b"}}
	c.PushAll(edge, candidates)
	assert.True(t, c.HasIterator(edge))
	assert.Equal(t, 2, c.IterLen(edge))

	peek, ok := c.PeekLast(edge)
	require.True(t, ok)
	assert.Equal(t, core.Action("b"), peek.Action)

	popped, ok := c.PopLastCandidate(edge)
	require.True(t, ok)
	assert.Equal(t, core.Action("b"), popped.Action)
	assert.Equal(t, 1, c.IterLen(edge))

	c.DeleteIterator(edge)
	assert.False(t, c.HasIterator(edge))
}
