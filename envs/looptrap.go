package envs

import "github.com/vaishakbelle/pandor/core"

const (
	trapStart = "start"
	trapGoal  = "goal"
	trapStuck = "stuck"

	AdvanceAction core.Action = "advance"
	SpinAction    core.Action = "spin"
)

// LoopTrap offers a safe path to the goal (AdvanceAction) alongside an
// action that deterministically returns to the same state with
// probability 1 (SpinAction from stuck): a controller that ever selects
// it contributes only to noter, never win or fail, and a correct search
// must avoid it in the controller it returns.
type LoopTrap struct{}

func (LoopTrap) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: trapStart, Prob: 1}}
}

func (LoopTrap) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	switch {
	case s == trapStart && a == AdvanceAction:
		return []core.DistEntry{{State: trapGoal, Prob: 1}}, nil
	case s == trapStart && a == SpinAction:
		return []core.DistEntry{{State: trapStuck, Prob: 1}}, nil
	default:
		// trapStuck's only legal action, SpinAction, stays put forever.
		return []core.DistEntry{{State: trapStuck, Prob: 1}}, nil
	}
}

func (LoopTrap) LegalActions(s core.EnvState) []core.Action {
	switch s {
	case trapStart:
		return []core.Action{AdvanceAction, SpinAction}
	case trapStuck:
		return []core.Action{SpinAction}
	default:
		return nil
	}
}

func (LoopTrap) IsGoalState(s core.EnvState) bool { return s == trapGoal }

func (LoopTrap) Observation(s core.EnvState) core.Observation { return s }
