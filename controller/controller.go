package controller

import (
	"fmt"

	"github.com/vaishakbelle/pandor/core"
)

// Controller is the partial N-bounded Mealy machine under construction:
// states 0..k-1 for some k <= bound, state 0 initial, transitions
// (q, o) -> (q', a) recorded in strict insertion order so that undoing the
// most recent extension (PopLast) is unambiguous.
type Controller struct {
	bound  int
	order  []core.Edge
	table  map[core.Edge]core.Transition
	iters  map[core.Edge][]core.Transition
}

// New returns an empty Controller bounded by the given number of states.
func New(bound int) *Controller {
	return &Controller{
		bound: bound,
		table: make(map[core.Edge]core.Transition),
		iters: make(map[core.Edge][]core.Transition),
	}
}

// Bound returns the configured maximum number of controller states.
func (c *Controller) Bound() int { return c.bound }

// InitState is always controller state 0.
func (c *Controller) InitState() core.ControllerState { return 0 }

// NumStates returns the number of controller states currently defined:
// 1 if no transitions are recorded yet, else one more than the largest
// next-state referenced by any transition.
func (c *Controller) NumStates() int {
	if len(c.table) == 0 {
		return 1
	}
	max := core.ControllerState(0)
	for _, tr := range c.table {
		if tr.Next > max {
			max = tr.Next
		}
	}
	return int(max) + 1
}

// Get returns the transition defined for edge, if any.
func (c *Controller) Get(edge core.Edge) (core.Transition, bool) {
	tr, ok := c.table[edge]
	return tr, ok
}

// Has reports whether edge has a defined transition.
func (c *Controller) Has(edge core.Edge) bool {
	_, ok := c.table[edge]
	return ok
}

// Set records (or overwrites) the transition for edge. Overwriting an
// already-recorded edge keeps its original position in insertion order.
//
// Preconditions: edge.State < NumStates(), and tr.Next <= NumStates() with
// tr.Next < Bound(); violating either is a contract error, reported rather
// than silently tolerated.
func (c *Controller) Set(edge core.Edge, tr core.Transition) error {
	if int(edge.State) >= c.NumStates() {
		return fmt.Errorf("Set%s = %s: %w", edge, tr, core.ErrStateOutOfBound)
	}
	if int(tr.Next) > c.NumStates() || int(tr.Next) >= c.bound {
		return fmt.Errorf("Set%s = %s: %w", edge, tr, core.ErrNextStateOutOfBound)
	}

	if _, exists := c.table[edge]; !exists {
		c.order = append(c.order, edge)
	}
	c.table[edge] = tr
	return nil
}

// PopLast removes and returns the most recently inserted transition. It is
// the exact inverse of the Set call that introduced that edge, required
// by the OR step to undo a controller extension when backtracking.
func (c *Controller) PopLast() (core.Edge, core.Transition, error) {
	if len(c.order) == 0 {
		return core.Edge{}, core.Transition{}, ErrPopOnEmpty
	}
	last := c.order[len(c.order)-1]
	tr := c.table[last]
	c.order = c.order[:len(c.order)-1]
	delete(c.table, last)
	return last, tr, nil
}

// Len reports the number of transitions currently recorded.
func (c *Controller) Len() int { return len(c.order) }

// Edges yields the recorded edges in insertion order, for iteration or
// rendering.
func (c *Controller) Edges() []core.Edge {
	out := make([]core.Edge, len(c.order))
	copy(out, c.order)
	return out
}

// --- extension iterator slots ---

// PushAll installs the full candidate list for edge's extension iterator.
// candidates[len-1] is the next one PopLast will return: representing the
// iterator as a plain mutable slice, rather than a language iterator
// object, makes it trivially resumable across recursive backtracking.
func (c *Controller) PushAll(edge core.Edge, candidates []core.Transition) {
	cp := make([]core.Transition, len(candidates))
	copy(cp, candidates)
	c.iters[edge] = cp
}

// PeekLast returns the next candidate for edge's iterator without
// consuming it.
func (c *Controller) PeekLast(edge core.Edge) (core.Transition, bool) {
	list := c.iters[edge]
	if len(list) == 0 {
		return core.Transition{}, false
	}
	return list[len(list)-1], true
}

// PopLastCandidate removes and returns the next candidate for edge's
// iterator ("burning" it), used both in ordinary forward exploration and
// when discarding the extension that caused a failure while backtracking.
func (c *Controller) PopLastCandidate(edge core.Edge) (core.Transition, bool) {
	list := c.iters[edge]
	if len(list) == 0 {
		return core.Transition{}, false
	}
	next := list[len(list)-1]
	c.iters[edge] = list[:len(list)-1]
	return next, true
}

// IterLen reports how many candidates remain for edge's extension iterator.
func (c *Controller) IterLen(edge core.Edge) int { return len(c.iters[edge]) }

// HasIterator reports whether edge currently has an extension-iterator
// slot at all: one exists iff (q, o) was first introduced by a
// non-deterministic choice still open on the current search path.
func (c *Controller) HasIterator(edge core.Edge) bool {
	_, ok := c.iters[edge]
	return ok
}

// DeleteIterator removes edge's iterator slot entirely, once it has been
// exhausted.
func (c *Controller) DeleteIterator(edge core.Edge) { delete(c.iters, edge) }
