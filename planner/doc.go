// Package planner drives a single bounded-controller search to a verdict.
//
// Plan wires an environment, a controller-state bound, and a desired
// likelihood of plan completion into a search.Context, runs it to
// completion, and reports either the synthesized Controller or the fact
// that none exists within the given bound. The step and backtrack counts
// the search accumulated are returned in Result.Stats only on success; for
// either verdict they are added to the prometheus counters, and a NotFound
// verdict returns no Result, so its counts are not returned to the caller.
package planner
