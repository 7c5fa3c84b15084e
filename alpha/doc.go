// Package alpha implements the α-accumulator and λ-evaluator at the heart
// of pandor's loop-aware probability aggregation.
//
// α holds, per search depth n, the probability mass that a subtree below n
// eventually wins, fails, or is proven never to terminate, plus a square
// "loop" matrix recording mass that cycles back from depth n to some
// earlier depth k. λ folds that accumulator, from the deepest active
// level back up to the root, into the three likelihoods the AND step
// tests against the desired LPC — applying, at each level, the
// geometric-series fixpoint correction for any probability mass that
// cycles back to that level's own root.
//
// Growth is geometric (doubling with a floor margin of 16 slots) rather
// than a fixed deep preallocation, so a bounded search with a small
// history never pays for a depth it never reaches, while a pathological
// deep one still only grows O(log depth) times.
package alpha
