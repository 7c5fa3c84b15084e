package alpha

// Cumulate folds the accumulator at depth n+1 — populated by the AND
// step's exhausted OR children — back into depth n, rescaling by the
// fixed point of the self-loop at n. p is the transition probability of
// the path segment that led into this AND node (the last history item's
// probability).
//
// The AND step calls this when it falls off the end of its successor list
// without an early win/fail termination, and also when it makes a
// backtrack decision (left or up).
func (a *Accumulator) Cumulate(n int, p float64) {
	a.ensure(n + 1)
	denom := 1 - a.loop[n][n]

	a.win[n] += p * a.win[n+1] / denom
	a.fail[n] += p * a.fail[n+1] / denom
	a.noter[n] += p * a.noter[n+1] / denom

	for k := 0; k < n; k++ {
		a.loop[k][n-1] += p * a.loop[k][n] / denom
		a.loop[k][n] = 0
	}
	a.loop[n][n] = 0
}
