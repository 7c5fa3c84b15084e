package controller

import "errors"

// Sentinel errors for controller store invariant violations. See core's
// errors.go for the broader data-model sentinels this package reuses
// (core.ErrStateOutOfBound, core.ErrNextStateOutOfBound, ...).
var (
	// ErrPopOnEmpty indicates PopLast was called with no transitions recorded.
	ErrPopOnEmpty = errors.New("controller: pop_last on empty transition map")

	// ErrIteratorMismatch indicates a popped transition did not match the
	// expected (q, o) edge or the iterator's last-proposed candidate —
	// an invariant breach in the backtracking "burn the extension" path.
	ErrIteratorMismatch = errors.New("controller: popped transition does not match iterator state")
)
