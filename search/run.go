package search

import "github.com/vaishakbelle/pandor/core"

// Run drives a complete search to a verdict: it seeds the AND/OR
// recursion with the environment's initial-state distribution and
// returns once Found or NotFound is reached. ctx's controller, by
// construction, holds a valid bounded Mealy-machine controller when Run
// returns Found.
func Run(ctx *Context) (Outcome, error) {
	return AndStep(ctx, ctx.Ctrl.InitState(), nil, core.History{}, true)
}
