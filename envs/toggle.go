package envs

import "github.com/vaishakbelle/pandor/core"

// Toggle models a two-step path that visits the same observation twice,
// requiring a different action each time: the first visit must answer
// "first" to advance, the second must answer "second" to reach the goal,
// or the episode falls into an unrecoverable trap. A memoryless (bound-1)
// controller cannot give two different answers to the same (q, o) edge, so
// it is wrong on at least one of the two visits; a bound-2 controller can
// step to a second controller state between them and answer correctly
// both times.
type Toggle struct{}

const (
	toggleFirst  = "first-visit"
	toggleSecond = "second-visit"
	toggleGoal   = "goal"
	toggleTrap   = "trap"

	toggleObs = "toggle"

	ToggleFirstAction  core.Action = "first"
	ToggleSecondAction core.Action = "second"
)

func (Toggle) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: toggleFirst, Prob: 1}}
}

func (Toggle) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	switch s {
	case toggleFirst:
		if a == ToggleFirstAction {
			return []core.DistEntry{{State: toggleSecond, Prob: 1}}, nil
		}
		return []core.DistEntry{{State: toggleTrap, Prob: 1}}, nil

	case toggleSecond:
		if a == ToggleSecondAction {
			return []core.DistEntry{{State: toggleGoal, Prob: 1}}, nil
		}
		return []core.DistEntry{{State: toggleTrap, Prob: 1}}, nil

	default:
		return []core.DistEntry{{State: toggleTrap, Prob: 1}}, nil
	}
}

func (Toggle) LegalActions(s core.EnvState) []core.Action {
	switch s {
	case toggleFirst, toggleSecond:
		return []core.Action{ToggleFirstAction, ToggleSecondAction}
	default:
		return nil
	}
}

func (Toggle) IsGoalState(s core.EnvState) bool { return s == toggleGoal }

// Observation collapses toggleFirst and toggleSecond to the same value:
// the controller perceives the same signal on both visits and must rely
// on its own state to tell them apart.
func (Toggle) Observation(s core.EnvState) core.Observation {
	switch s {
	case toggleFirst, toggleSecond:
		return toggleObs
	default:
		return s
	}
}
