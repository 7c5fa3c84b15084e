package env

import (
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/vaishakbelle/pandor/core"
)

// SumTolerance is the slack allowed when checking that a distribution's
// probabilities sum to 1, to absorb floating-point accumulation error.
const SumTolerance = 1e-9

// ValidateDistribution checks that dist is a well-formed probability
// measure: every entry non-negative, and the total within SumTolerance of
// 1. All violations found are joined into a single *multierror.Error
// rather than returning on the first, so a caller debugging a hand-built
// environment sees every problem at once.
func ValidateDistribution(dist []core.DistEntry) error {
	var errs *multierror.Error

	if len(dist) == 0 {
		errs = multierror.Append(errs, ErrEmptyDistribution)
		return errs.ErrorOrNil()
	}

	total := 0.0
	for i, d := range dist {
		if d.Prob < 0 {
			errs = multierror.Append(errs, fmt.Errorf("entry %d (state %v, p=%v): %w", i, d.State, d.Prob, ErrNegativeProbability))
			continue
		}
		total += d.Prob
	}
	if math.Abs(total-1.0) > SumTolerance {
		errs = multierror.Append(errs, fmt.Errorf("total probability %v: %w", total, ErrDistributionNotNormalized))
	}

	return errs.ErrorOrNil()
}

// ValidateEnvironment exercises an Environment's InitStates and, for every
// reachable non-goal state and each of its legal actions, its NextStates,
// collecting every malformed distribution into one error. The walk has no
// depth or fan-out limit: it visits every reachable state once.
// It is intended for use in an environment's own test suite, not on the
// hot search path.
func ValidateEnvironment(e Environment) error {
	var errs *multierror.Error

	init := e.InitStates()
	if err := ValidateDistribution(init); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("InitStates: %w", err))
	}

	seen := make(map[core.EnvState]bool)
	var frontier []core.EnvState
	for _, d := range init {
		frontier = append(frontier, d.State)
	}

	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]
		if seen[s] || s == core.StateWin || s == core.StateFail {
			continue
		}
		seen[s] = true

		if e.IsGoalState(s) {
			continue
		}
		for _, a := range e.LegalActions(s) {
			next, err := e.NextStates(s, a)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("NextStates(%v, %v): %w", s, a, err))
				continue
			}
			if err := ValidateDistribution(next); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("NextStates(%v, %v): %w", s, a, err))
			}
			for _, d := range next {
				if !seen[d.State] {
					frontier = append(frontier, d.State)
				}
			}
		}
	}

	return errs.ErrorOrNil()
}

// SortDescending stably sorts dist by descending probability, preserving
// input order among ties — the AND step always iterates successors in
// this order. It mutates and returns dist.
func SortDescending(dist []core.DistEntry) []core.DistEntry {
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Prob > dist[j].Prob
	})
	return dist
}
