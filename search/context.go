package search

import (
	"github.com/rs/zerolog"

	"github.com/vaishakbelle/pandor/alpha"
	"github.com/vaishakbelle/pandor/controller"
	"github.com/vaishakbelle/pandor/core"
	"github.com/vaishakbelle/pandor/env"
)

// Checkpoint is the state snapshot captured when an OR step first
// introduces a non-deterministic controller extension: the history at
// that point, and a deep copy of the accumulator, so a later failure can
// be reverted back to exactly this point before the next candidate is
// tried.
type Checkpoint struct {
	History core.History
	Alpha   *alpha.Accumulator
}

// Context carries everything a single search run threads through every
// AND and OR step: the environment under search, the controller store
// being built, the probability accumulator, the checkpoint stack, the
// backtracking flag, and the desired likelihood of plan completion (LPC)
// every step tests its running likelihoods against.
//
// A Context is not safe for concurrent use; one search runs on one
// goroutine from root to verdict.
type Context struct {
	Env  env.Environment
	Ctrl *controller.Controller
	Acc  *alpha.Accumulator

	LPCDesired   float64
	Backtracking bool
	Checkpoints  []Checkpoint

	NumSteps        uint64
	NumBacktracking uint64

	Log zerolog.Logger
}

// NewContext builds a fresh search Context over e, bounded to at most
// numStates controller states, targeting lpcDesired as the minimum
// acceptable likelihood of plan completion.
func NewContext(e env.Environment, numStates int, lpcDesired float64, log zerolog.Logger) *Context {
	return &Context{
		Env:        e,
		Ctrl:       controller.New(numStates),
		Acc:        alpha.New(),
		LPCDesired: lpcDesired,
		Log:        log.With().Str("component", "search").Logger(),
	}
}

// pushCheckpoint records a new non-deterministic choice point.
func (c *Context) pushCheckpoint(history core.History) {
	c.Checkpoints = append(c.Checkpoints, Checkpoint{
		History: history.Clone(),
		Alpha:   c.Acc.Snapshot(),
	})
}

// topCheckpoint returns the checkpoint stack's top entry. Callers must
// only call this when len(c.Checkpoints) > 0.
func (c *Context) topCheckpoint() Checkpoint {
	return c.Checkpoints[len(c.Checkpoints)-1]
}

// popCheckpoint discards the checkpoint stack's top entry.
func (c *Context) popCheckpoint() {
	c.Checkpoints = c.Checkpoints[:len(c.Checkpoints)-1]
}
