package core

import "errors"

// Sentinel errors for contract violations in the controller data model.
// Callers MUST use errors.Is(err, ErrX) to branch on these; they are
// never wrapped at the definition site, only (optionally) at a boundary
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrStateOutOfBound indicates a controller state q is not < num_states
	// where the invariant requires it (controller.Controller.Set precondition).
	ErrStateOutOfBound = errors.New("core: controller state out of defined bound")

	// ErrNextStateOutOfBound indicates a transition's q' is not below the
	// controller's configured bound, or is greater than num_states.
	ErrNextStateOutOfBound = errors.New("core: next controller state exceeds bound")

	// ErrUnknownEdge indicates a Get on a (q, o) edge with no defined transition.
	ErrUnknownEdge = errors.New("core: no transition defined for edge")

	// ErrEmptyTransitions describes an undo with no transitions to pop. No
	// function in this module returns it: controller.Controller.PopLast
	// reports that case with controller.ErrPopOnEmpty.
	ErrEmptyTransitions = errors.New("core: no transitions to pop")

	// ErrEmptyIterator describes an exhausted or absent extension
	// iterator. No function in this module returns it: the controller's
	// PeekLast and PopLastCandidate report that case with a false result.
	ErrEmptyIterator = errors.New("core: extension iterator is empty")

	// ErrBadDistribution indicates a probability distribution (DistEntry
	// slice) has negative entries or does not sum to 1 within tolerance.
	ErrBadDistribution = errors.New("core: distribution is not a valid probability measure")
)
