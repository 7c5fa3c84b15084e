// Package envs collects small reference environments used to exercise the
// search and planner packages end to end. None of this is part of the
// core's public contract — a real deployment brings its own
// env.Environment — these exist only because the search engine needs
// something concrete to search over in tests and demos.
package envs
