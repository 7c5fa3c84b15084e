package env

import "github.com/vaishakbelle/pandor/core"

// Environment is the consumed interface a domain (grid walk, hallway, ...)
// must implement for pandor to synthesize a controller against it.
// Implementations are read-only from the search engine's point of view:
// nothing in this module ever mutates environment state, it only queries
// distributions and legality.
type Environment interface {
	// InitStates returns the initial state distribution; entries must sum to 1.
	InitStates() []core.DistEntry

	// NextStates returns the successor distribution for taking action a in
	// state s; entries must sum to 1. Never called with s == core.StateWin
	// or core.StateFail, and never with a == core.ActionStop (the search
	// engine handles ActionStop itself).
	NextStates(s core.EnvState, a core.Action) ([]core.DistEntry, error)

	// LegalActions returns the actions available in s, excluding ActionStop
	// (the search engine always adds it itself when generating extensions).
	LegalActions(s core.EnvState) []core.Action

	// IsGoalState reports whether s is a goal state.
	IsGoalState(s core.EnvState) bool

	// Observation returns the observation the controller perceives in s.
	Observation(s core.EnvState) core.Observation
}
