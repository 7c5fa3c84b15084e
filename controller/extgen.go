package controller

import (
	"github.com/vaishakbelle/pandor/core"
	"github.com/vaishakbelle/pandor/env"
)

// GenerateExtensions builds the ordered candidate list of (q', a) pairs
// that an OR step may choose from when it first introduces a
// non-deterministic extension for (s, o).
//
// If s is a goal state, the only candidate is (0, STOP): stopping here
// always wins, so nothing else need be tried.
//
// Otherwise, legal = [STOP] ++ legal_actions(s), and candidates are built
// for every existing controller state q' from numStates-1 down to 0,
// crossed with legal — so the caller's PopLast-driven iteration explores
// existing states before the controller grows. If numStates < bound, the
// candidates that introduce a brand-new state (q' = numStates) are
// prepended to the front of the list, which — since the iterator pops
// from the tail — means they are the last ones tried: existing states are
// always preferred over growing the controller.
func GenerateExtensions(e env.Environment, s core.EnvState, numStates, bound int) []core.Transition {
	if e.IsGoalState(s) {
		return []core.Transition{{Next: 0, Action: core.ActionStop}}
	}

	legal := append([]core.Action{core.ActionStop}, e.LegalActions(s)...)

	var list []core.Transition
	for q := numStates - 1; q >= 0; q-- {
		for _, a := range legal {
			list = append(list, core.Transition{Next: core.ControllerState(q), Action: a})
		}
	}

	if numStates < bound {
		var fresh []core.Transition
		for _, a := range legal {
			fresh = append(fresh, core.Transition{Next: core.ControllerState(numStates), Action: a})
		}
		list = append(fresh, list...)
	}

	return list
}
