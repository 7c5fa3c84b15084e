package envs

import "github.com/vaishakbelle/pandor/core"

// ForwardAction is the one legal action in Hallway.
const ForwardAction core.Action = "forward"

// Hallway is a length-N corridor with noisy forward motion: taking
// ForwardAction advances one cell with probability Success and leaves the
// walker in place otherwise. Position length-1 is the goal.
type Hallway struct {
	Length  int
	Success float64
}

// NewHallway returns a Hallway of the given length whose forward action
// succeeds with probability success.
func NewHallway(length int, success float64) Hallway {
	return Hallway{Length: length, Success: success}
}

func (h Hallway) InitStates() []core.DistEntry {
	return []core.DistEntry{{State: 0, Prob: 1}}
}

func (h Hallway) NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error) {
	pos := s.(int)
	advanced := pos + 1
	if advanced > h.Length-1 {
		advanced = h.Length - 1
	}
	if advanced == pos {
		return []core.DistEntry{{State: pos, Prob: 1}}, nil
	}
	return []core.DistEntry{
		{State: advanced, Prob: h.Success},
		{State: pos, Prob: 1 - h.Success},
	}, nil
}

func (h Hallway) LegalActions(s core.EnvState) []core.Action {
	if s.(int) >= h.Length-1 {
		return nil
	}
	return []core.Action{ForwardAction}
}

func (h Hallway) IsGoalState(s core.EnvState) bool { return s.(int) >= h.Length-1 }

func (h Hallway) Observation(s core.EnvState) core.Observation { return s }
