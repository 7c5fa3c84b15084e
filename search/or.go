package search

import (
	"fmt"

	"github.com/vaishakbelle/pandor/controller"
	"github.com/vaishakbelle/pandor/core"
)

// OrStep resolves one OR node: the controller's choice of what to do
// having observed s with arrival probability p. history is the path
// leading up to (but not including) this node — the same value passed to
// the AND step that invoked it.
//
// A terminal state credits Win or Fail mass directly. A state matching an
// earlier (q, s) pair on the path is a cycle: it either contributes
// entirely to Noter (a deterministic, certain repeat) or adds its mass to
// the loop matrix for the λ-evaluator to fold later. Otherwise the
// controller either already has a transition for this (state,
// observation) edge — reuse it, if its action is still legal here — or
// this is a fresh non-deterministic choice point: push a checkpoint,
// generate the ordered candidate list, and try each one (from the tail
// of the list, so existing controller states before new ones) until one
// lets the enclosing AND step
// keep the likelihoods within bound, undoing and burning every candidate
// that does not.
func OrStep(ctx *Context, q core.ControllerState, s core.EnvState, p float64, history core.History) (Outcome, error) {
	ctx.NumSteps++

	if s == core.StateWin {
		ctx.Acc.AddWin(len(history), p)
		return Unknown, nil
	}
	if s == core.StateFail {
		ctx.Acc.AddFail(len(history), p)
		return Unknown, nil
	}

	target := core.HistoryItem{Q: q, S: s, P: core.ProbWildcard}
	if k, ok := history.IndexOf(target); ok {
		loopProb := p * history.PathProbFrom(k)
		if loopProb == 1 {
			ctx.Acc.AddNoter(len(history), 1)
		} else {
			ctx.Acc.AddLoop(k, len(history)-1, p)
		}
		return Unknown, nil
	}

	history = history.Push(core.HistoryItem{Q: q, S: s, P: p})
	obs := ctx.Env.Observation(s)
	edge := core.Edge{State: q, Observation: obs}

	if reuseEdge(ctx, edge, history) {
		tr, ok := ctx.Ctrl.Get(edge)
		if !ok {
			return Unknown, fmt.Errorf("or step: reuse%s: %w", edge, core.ErrUnknownEdge)
		}
		if !isLegal(ctx, s, tr.Action) {
			ctx.Acc.AddFail(len(history)-1, p)
			return Unknown, nil
		}
		return AndStep(ctx, tr.Next, tr.Action, history, false)
	}

	if !ctx.Backtracking {
		candidates := controller.GenerateExtensions(ctx.Env, s, ctx.Ctrl.NumStates(), ctx.Ctrl.Bound())
		ctx.Ctrl.PushAll(edge, candidates)
		ctx.pushCheckpoint(history)
	} else {
		top := ctx.topCheckpoint()
		if len(history) == len(top.History) {
			ctx.Backtracking = false
			ctx.Acc.Restore(top.Alpha)
			if err := burnLast(ctx, edge); err != nil {
				return Unknown, err
			}
		} else if !ctx.Ctrl.Has(edge) {
			return Unknown, fmt.Errorf("or step: pass-through%s: %w", edge, core.ErrUnknownEdge)
		}
	}

	for {
		if ctx.Ctrl.IterLen(edge) == 0 {
			ctx.Ctrl.DeleteIterator(edge)
			top := ctx.topCheckpoint()
			ctx.Acc.Restore(top.Alpha)
			ctx.popCheckpoint()
			ctx.Acc.AddFail(0, 1)
			return Unknown, nil
		}

		next, _ := ctx.Ctrl.PeekLast(edge)
		if !ctx.Backtracking {
			if err := ctx.Ctrl.Set(edge, next); err != nil {
				return Unknown, fmt.Errorf("or step: Set%s = %s: %w", edge, next, err)
			}
		}

		outcome, err := AndStep(ctx, next.Next, next.Action, history, false)
		if err != nil {
			return Unknown, err
		}
		if outcome.done() {
			return outcome, nil
		}
		if outcome == Unknown && !ctx.Backtracking {
			return Unknown, nil
		}

		ctx.Backtracking = false
		top := ctx.topCheckpoint()
		ctx.Acc.Restore(top.Alpha)
		if err := burnLast(ctx, edge); err != nil {
			return Unknown, err
		}
	}
}

// reuseEdge reports whether this OR node should reuse an already-defined
// controller transition rather than branch into a non-deterministic
// choice: either we are proceeding normally and the edge is already
// defined, or we are replaying a backtrack and this particular history
// does not correspond to any open checkpoint (it is simply being passed
// through on the way back down to the one that does).
func reuseEdge(ctx *Context, edge core.Edge, history core.History) bool {
	if !ctx.Backtracking {
		return ctx.Ctrl.Has(edge)
	}
	for _, cp := range ctx.Checkpoints {
		if historyEqual(history, cp.History) {
			return false
		}
	}
	return true
}

// burnLast pops the most recent transition and discards the extension
// iterator entry it came from, verifying the two agree with each other
// and with the edge being unwound.
func burnLast(ctx *Context, edge core.Edge) error {
	poppedEdge, poppedTr, err := ctx.Ctrl.PopLast()
	if err != nil {
		return fmt.Errorf("or step: %w", err)
	}
	if poppedEdge != edge {
		return fmt.Errorf("or step: popped %s, expected %s: %w", poppedEdge, edge, ErrPoppedWrongEdge)
	}
	burned, ok := ctx.Ctrl.PopLastCandidate(edge)
	if !ok || burned != poppedTr {
		return fmt.Errorf("or step: burned %s, popped %s: %w", burned, poppedTr, ErrIteratorCandidateMismatch)
	}
	return nil
}

// isLegal reports whether a is a valid action to issue in s: either the
// engine's own implicit STOP, or one of the environment's own legal
// actions for s. Two environment states can share one observation while
// differing in which actions are legal, so a transition reused from an
// earlier (state, observation) edge is not guaranteed to still be legal
// here.
func isLegal(ctx *Context, s core.EnvState, a core.Action) bool {
	if a == core.ActionStop {
		return true
	}
	for _, legal := range ctx.Env.LegalActions(s) {
		if legal == a {
			return true
		}
	}
	return false
}

func historyEqual(a, b core.History) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
