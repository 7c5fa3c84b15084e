package env

import "errors"

// Sentinel errors surfaced by this package. As elsewhere in this module,
// callers branch with errors.Is; ValidateDistribution/ValidateEnvironment
// wrap one of these per violation found and join them with
// github.com/hashicorp/go-multierror so a caller can inspect every
// malformed distribution in one pass instead of fixing them one at a time.
var (
	// ErrNegativeProbability indicates a DistEntry.Prob < 0.
	ErrNegativeProbability = errors.New("env: distribution entry has negative probability")

	// ErrDistributionNotNormalized indicates a distribution's probabilities
	// do not sum to 1 within SumTolerance.
	ErrDistributionNotNormalized = errors.New("env: distribution does not sum to 1")

	// ErrEmptyDistribution indicates a distribution has no entries at all.
	ErrEmptyDistribution = errors.New("env: distribution has no entries")
)
