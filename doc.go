// Package pandor synthesizes a bounded-size finite-state controller
// (a Mealy machine) for a probabilistic, partially-observable environment,
// via an AND-OR search over controller extensions weighted by an
// accumulated likelihood of plan completion.
//
//	core/       — data model: controller/observation/action/env-state
//	             values, history
//	env/        — the Environment adapter contract and distribution
//	             validation
//	controller/ — the Mealy-machine store under construction plus its
//	             extension-candidate generator
//	alpha/      — the per-depth win/fail/noter accumulator and the
//	             bottom-up likelihood evaluator folded over it
//	search/     — the AND/OR search itself and its checkpoint stack
//	planner/    — Plan, the public entry point wiring the above into a
//	             single bounded search with statistics and metrics
//	envs/       — small reference environments used to exercise the
//	             search and planner packages end to end
//
// Call planner.Plan with an env.Environment, a controller-state bound, and
// a desired likelihood of plan completion to run a search to a verdict.
package pandor
