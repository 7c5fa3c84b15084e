package search

import (
	"fmt"

	"github.com/vaishakbelle/pandor/alpha"
	"github.com/vaishakbelle/pandor/core"
	"github.com/vaishakbelle/pandor/env"
)

// AndStep resolves one AND node: the weighted choice the environment makes
// among the successors of taking action in the state history.Last().S (or,
// when first is true, among the initial-state distribution — in which
// case q and action are ignored).
//
// It walks the successor distribution in descending-probability order,
// invoking OrStep on each and re-testing the running likelihoods against
// the desired LPC after every one returns. A successor that pushes the
// lower (Win) bound past the threshold ends the whole search with Found;
// one that pushes the upper bound (1 - Fail - Noter) below the threshold
// triggers backtracking — either resuming this same successor list from
// an earlier point ("left") or unwinding to the caller ("up") — decided
// by comparing the current history against the checkpoint stack's top.
func AndStep(ctx *Context, q core.ControllerState, action core.Action, history core.History, first bool) (Outcome, error) {
	successors, err := andSuccessors(ctx, q, action, history, first)
	if err != nil {
		return Unknown, err
	}

	ctx.Acc.Reset(len(history))

	start := 0
	if ctx.Backtracking && len(ctx.Checkpoints) > 0 {
		top := ctx.topCheckpoint()
		if len(history) < len(top.History) {
			start = indexOfState(successors, top.History[len(history)].S)
		}
	}

	for i := start; i < len(successors); i++ {
		de := successors[i]

		outcome, err := OrStep(ctx, q, de.State, de.Prob, history.Clone())
		if err != nil {
			return Unknown, err
		}
		if outcome.done() {
			return outcome, nil
		}

		likelihoods := alpha.Evaluate(ctx.Acc, history)
		lower := likelihoods.Win
		upper := 1 - likelihoods.Fail - likelihoods.Noter

		switch {
		case lower >= ctx.LPCDesired:
			return Found, nil

		case upper < ctx.LPCDesired:
			ctx.Backtracking = true
			ctx.NumBacktracking++

			if len(ctx.Checkpoints) == 0 {
				return NotFound, nil
			}

			top := ctx.topCheckpoint()
			cumulateOnBacktrack(ctx, history)

			if history.MatchesCheckpointTop(top.History) {
				// Backtrack left: resume this same loop at the
				// successor the checkpoint was originally taken on top
				// of, rather than unwinding to the caller.
				i = indexOfState(successors, top.History[len(history)].S) - 1
				continue
			}
			return Failure, nil
		}
	}

	if len(history) == 0 {
		return Unknown, ErrEmptyHistoryOnFold
	}
	cumulateOnBacktrack(ctx, history)
	return Unknown, nil
}

// cumulateOnBacktrack folds the mass this AND node accumulated at its own
// depth, len(history), back one level into len(history)-1 — the depth at
// which the OR step that invoked this AND node will be read by its own
// enclosing AND step — weighted by the probability, history.Last().P, of
// having arrived here at all. The now-fully-folded source depth is then
// cleared so a sibling successor recursing to the same depth starts clean
// (reset_alpha on that successor's own entry would clear it again
// regardless; doing it here just leaves no stale mass lying around
// between the two). It is invoked both when an AND step falls off its
// successor list and at the moment a backtrack decision (left or up) is
// made, and is a no-op at the very root of the search (empty history),
// where there is no shallower depth left to fold into.
func cumulateOnBacktrack(ctx *Context, history core.History) {
	if len(history) == 0 {
		return
	}
	n := len(history) - 1
	p := history.Last().P
	ctx.Acc.Cumulate(n, p)
	ctx.Acc.Reset(len(history))
}

// andSuccessors resolves the weighted list of environment outcomes this
// AND node ranges over, sorted in descending probability order.
func andSuccessors(ctx *Context, q core.ControllerState, action core.Action, history core.History, first bool) ([]core.DistEntry, error) {
	var successors []core.DistEntry

	switch {
	case first:
		successors = ctx.Env.InitStates()

	case action == core.ActionStop:
		s := history.Last().S
		if ctx.Env.IsGoalState(s) {
			successors = []core.DistEntry{{State: core.StateWin, Prob: 1.0}}
		} else {
			successors = []core.DistEntry{{State: core.StateFail, Prob: 1.0}}
		}

	default:
		s := history.Last().S
		var err error
		successors, err = ctx.Env.NextStates(s, action)
		if err != nil {
			return nil, fmt.Errorf("and step: NextStates(%v, %v): %w", s, action, err)
		}
	}

	return env.SortDescending(successors), nil
}

// indexOfState returns the index of the first entry in successors whose
// state equals target. Called only when the checkpoint stack guarantees
// a match exists.
func indexOfState(successors []core.DistEntry, target core.EnvState) int {
	for i, de := range successors {
		if de.State == target {
			return i
		}
	}
	return 0
}
