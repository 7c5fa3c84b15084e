// Package search implements the AND-OR controller search: the AND step
// (choosing a weighted environment successor) and the OR step (choosing a
// controller transition, deterministically reusing one already defined or
// non-deterministically trying a new one), tied together by the checkpoint
// stack that makes non-deterministic controller choices backtrackable.
//
// Neither step recurses through the Go call stack in the usual
// divide-and-conquer sense and then unwind unconditionally; instead each
// level re-tests the likelihood of plan completion (LPC) computed by
// alpha.Evaluate against the desired bound after every recursive call
// returns, and decides whether to keep going, retry the last
// non-deterministic choice ("backtrack left"), or unwind one frame
// ("backtrack up"). Both functions report their result as an explicit
// Outcome value rather than signalling success or exhaustion through a
// panic: Outcome and error are orthogonal — an error means a contract was
// violated (a malformed environment, an invariant broken in the
// controller store), while Outcome communicates the ordinary, expected
// result of a search step.
package search
