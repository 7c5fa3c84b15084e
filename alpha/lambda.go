package alpha

import "github.com/vaishakbelle/pandor/core"

// Epsilon is the tolerance used to detect an effectively-certain self-loop.
const Epsilon = 1e-6

// Likelihoods are the three outcome probabilities the AND step tests
// against the desired LPC: Win (lower bound on success), Fail and Noter
// (together give the upper bound on success via 1 - Fail - Noter).
type Likelihoods struct {
	Win, Fail, Noter float64
}

// Evaluate computes the likelihoods at the root of history. history is the
// AND step's own, not-yet-extended path — the value folded right after
// the matching OR step call returns.
//
// Internally, n = len(history)-1 is the index of the deepest history item
// folded by this evaluation; the fold starts from α at depth n+1 (the
// mass left by whatever AND/OR recursion just returned) and walks back up
// to the root, applying at each level k the geometric-series fixpoint for
// any probability mass that loops from below back to k itself
// (L_loop[k]), clamping to a pure non-terminating cycle when that mass is
// within Epsilon of certainty.
func Evaluate(a *Accumulator, history core.History) Likelihoods {
	n := len(history) - 1

	likelihoods := Likelihoods{
		Win:   a.Win(n + 1),
		Fail:  a.Fail(n + 1),
		Noter: a.Noter(n + 1),
	}

	if n < 0 {
		return likelihoods
	}

	lLoop := make([]float64, n+1)

	for k := n; k >= 0; k-- {
		lLoop[k] = a.Loop(k, k)

		prod := 1.0
		for m := k + 1; m <= n; m++ {
			prod *= history[m].P
			lLoop[k] += a.Loop(k, m) * prod / (1 - lLoop[m])
		}

		if lLoop[k] > 1-Epsilon {
			lLoop[k] = 0
			a.AddNoter(k, history[k].P)
			for i := k; i <= n; i++ {
				for j := k; j <= n; j++ {
					a.SetLoop(i, j, 0)
				}
			}
			likelihoods = Likelihoods{
				Win:   a.Win(k),
				Fail:  a.Fail(k),
				Noter: a.Noter(k),
			}
			continue
		}

		denom := 1 - lLoop[k]
		likelihoods = Likelihoods{
			Win:   a.Win(k) + history[k].P*likelihoods.Win/denom,
			Fail:  a.Fail(k) + history[k].P*likelihoods.Fail/denom,
			Noter: a.Noter(k) + history[k].P*likelihoods.Noter/denom,
		}
	}

	return likelihoods
}
