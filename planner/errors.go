package planner

import "errors"

// Sentinel errors for contract violations in the planner's own inputs,
// distinct from search.Outcome (which is the engine's ordinary Found/
// NotFound result, not an error).
var (
	// ErrLPCTooHigh indicates lpcDesired >= 1.0, rejected as a hard
	// precondition for numerical stability in the λ-evaluator.
	ErrLPCTooHigh = errors.New("planner: lpcDesired must be < 1.0")

	// ErrLPCNegative indicates lpcDesired < 0, not a valid probability.
	ErrLPCNegative = errors.New("planner: lpcDesired must be >= 0")

	// ErrBoundTooSmall indicates statesBound < 1: a controller needs at
	// least its initial state to exist at all.
	ErrBoundTooSmall = errors.New("planner: statesBound must be >= 1")

	// ErrNotFound indicates the search exhausted every alternative at
	// every level without a controller meeting lpcDesired within
	// statesBound states.
	ErrNotFound = errors.New("planner: no controller satisfies the desired likelihood within the given bound")

	// ErrUnresolvedSearch indicates search.Run returned without a
	// terminal Outcome, which should never happen: a broken invariant
	// somewhere in the AND/OR recursion, not a normal planning result.
	ErrUnresolvedSearch = errors.New("planner: search returned without a terminal outcome")
)
