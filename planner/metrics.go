package planner

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespacePandor = "pandor"

// planMetrics mirrors Stats as prometheus counters, registered against
// whatever Registerer the caller configured via WithRegisterer.
type planMetrics struct {
	steps        prometheus.Counter
	backtracking prometheus.Counter
}

// newPlanMetrics registers a fresh pair of counters against reg, or — since
// Plan is called repeatedly against the same default registerer across a
// process's lifetime, unlike the long-lived single-registration services
// promauto is built for — reuses the ones already registered under the
// same name if a prior call got there first.
func newPlanMetrics(reg prometheus.Registerer) planMetrics {
	return planMetrics{
		steps: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespacePandor,
			Name:      "search_steps_total",
			Help:      "number of OR steps taken across all Plan calls",
		}),
		backtracking: registerCounter(reg, prometheus.CounterOpts{
			Namespace: namespacePandor,
			Name:      "search_backtracks_total",
			Help:      "number of backtracking decisions made across all Plan calls",
		}),
	}
}

func registerCounter(reg prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	counter := prometheus.NewCounter(opts)
	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		panic(err)
	}
	return counter
}

func (m planMetrics) observe(s Stats) {
	m.steps.Add(float64(s.NumSteps))
	m.backtracking.Add(float64(s.NumBacktracking))
}
