package search

import "errors"

// Sentinel errors for faults that halt a search run: these are never part
// of ordinary control flow (see Outcome for that) and always indicate a
// broken invariant in the controller store, the environment adapter, or
// the caller's use of this package.
var (
	// ErrPoppedWrongEdge indicates PopLast returned a transition for an
	// edge other than the one the OR step expected to be undoing — the
	// controller's LIFO discipline has been violated.
	ErrPoppedWrongEdge = errors.New("search: popped transition does not belong to the expected edge")

	// ErrIteratorCandidateMismatch indicates the extension-iterator
	// candidate just burned does not match the transition just removed
	// from the controller store.
	ErrIteratorCandidateMismatch = errors.New("search: burned iterator candidate does not match popped transition")

	// ErrEmptyHistoryOnFold indicates an AND step reached the end of its
	// successor list with an empty history, which should never happen:
	// the root AND step always resolves to Found or NotFound before its
	// own list can be exhausted.
	ErrEmptyHistoryOnFold = errors.New("search: cannot cumulate alpha at the root of the search")
)
