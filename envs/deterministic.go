package envs

import "github.com/vaishakbelle/pandor/core"

// Deterministic is the simplest possible environment: one non-goal state
// reached with certainty at the start, one legal action that reaches a
// goal state with certainty. A bound-1 controller that maps the start
// state's (q, o) edge to that action, and the goal's edge to STOP, always
// wins.
type Deterministic struct {
	// Action is the single legal action in the start state.
	Action core.Action
}

// NewDeterministic returns a Deterministic environment whose one legal
// action is named action.
func NewDeterministic(action core.Action) Deterministic {
	return Deterministic{Action: action}
}

const (
	detStart = "start"
	detGoal  = "goal"
)

func (d Deterministic) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: detStart, Prob: 1}}
}

func (d Deterministic) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	return []core.DistEntry{{State: detGoal, Prob: 1}}, nil
}

func (d Deterministic) LegalActions(s core.EnvState) []core.Action {
	if s == detGoal {
		return nil
	}
	return []core.Action{d.Action}
}

func (d Deterministic) IsGoalState(s core.EnvState) bool { return s == detGoal }

func (d Deterministic) Observation(s core.EnvState) core.Observation { return s }
