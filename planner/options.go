package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// config collects every Plan tunable behind the functional-options surface;
// none of it is exposed as environment variables or flags.
type config struct {
	logger     zerolog.Logger
	registerer prometheus.Registerer
}

func defaultConfig() config {
	return config{
		logger:     zerolog.Nop(),
		registerer: prometheus.DefaultRegisterer,
	}
}

// Option configures a single Plan call.
type Option func(*config)

// WithLogger sets the zerolog.Logger that the search context carries and
// that Plan logs the verdict (found, not found, or aborted) to. The AND and
// OR steps do not log individual steps, checkpoints or backtracks. The
// default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

// WithRegisterer sets the prometheus.Registerer that num_steps and
// num_backtracking counters are registered against. Passing a nil
// registerer is a caller error, caught at option-construction time rather
// than surfacing as a confusing nil-pointer panic deep inside a run.
// The default is prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("planner: WithRegisterer requires a non-nil Registerer")
	}
	return func(c *config) {
		c.registerer = reg
	}
}
