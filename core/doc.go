// Package core defines the shared data model for pandor's probabilistic
// AND-OR controller synthesis: controller states, observations, actions,
// environment states (including the WIN/FAIL terminals), Mealy
// transitions, and the history type that the search engine walks and
// rewinds. The checkpoint type itself is search.Checkpoint.
//
// None of the types here are thread-safe, and none need to be: the whole
// search is a single synchronous call stack with no suspension points
// between observable operations.
//
// Sentinel errors (errors.go) cover data-model contract violations;
// packages such as controller, env, search and planner define further
// sentinels of their own. Callers branch on all of them with errors.Is,
// never string comparison.
package core
