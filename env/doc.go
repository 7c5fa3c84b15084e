// Package env defines the contract that an environment adapter must
// satisfy to be searched by pandor's AND-OR engine. It is deliberately
// the only interface the search core depends on: everything
// domain-specific — grid walks, hallways, or any other partially
// observable, stochastic environment — lives behind this interface and
// stays out of the core's scope.
//
// Probabilities returned by InitStates and NextStates must be
// non-negative and sum to 1 within SumTolerance; ValidateDistribution and
// ValidateEnvironment check this and aggregate every violation found
// (rather than stopping at the first) using
// github.com/hashicorp/go-multierror, mirroring how optakt-flow-dps
// collects multi-cause validation failures before reporting.
package env
