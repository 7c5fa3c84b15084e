package core

import "fmt"

// ControllerState is an index into the bounded Mealy machine, 0 <= q < bound.
// State 0 is always the controller's initial state.
type ControllerState int

// Observation is an opaque, comparable value produced by the environment
// adapter for a given environment state (core.EnvState). It is used only
// as a map key, never interpreted by the search engine.
type Observation interface{}

// Action is an opaque, comparable value drawn from an environment's legal
// action set, or the sentinel ActionStop.
type Action interface{}

// ActionStop is the sentinel action that terminates an episode: WIN if the
// environment considers the current state a goal, FAIL otherwise.
const ActionStop Action = "pandor:stop"

// EnvState is an opaque, comparable environment state, or one of the two
// terminal sentinels StateWin / StateFail.
type EnvState interface{}

type terminalState string

// String renders the terminal sentinel for logging; it implements
// fmt.Stringer so callers that format EnvState values get a readable tag
// instead of the underlying private type name.
func (t terminalState) String() string { return string(t) }

const (
	// StateWin is the terminal environment state representing a reached goal.
	StateWin EnvState = terminalState("WIN")
	// StateFail is the terminal environment state representing a proven non-goal terminal.
	StateFail EnvState = terminalState("FAIL")
)

// Transition is a single Mealy edge's right-hand side: the next controller
// state and the action emitted on it.
type Transition struct {
	Next   ControllerState
	Action Action
}

// String gives a compact "-> (q', a)" rendering used in log messages.
func (t Transition) String() string {
	return fmt.Sprintf("-> (%v, %v)", t.Next, t.Action)
}

// Edge is the left-hand side of a Mealy transition: a (controller state,
// observation) pair.
type Edge struct {
	State       ControllerState
	Observation Observation
}

// String renders an edge as "(q, o)".
func (e Edge) String() string {
	return fmt.Sprintf("(%v, %v)", e.State, e.Observation)
}

// DistEntry is one outcome of a probability distribution: a state paired
// with the probability of landing on it. Environment adapters return
// slices of DistEntry that must sum to 1 (see env.ValidateDistribution).
type DistEntry struct {
	State EnvState
	Prob  float64
}
