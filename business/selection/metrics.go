package selection

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SolveDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mdp_solve_duration_seconds",
			Help:    "Wall time of a single MDP solve, excluding cache hits.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	ReachableStates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mdp_reachable_states",
			Help:    "Number of reachable states enumerated per solve.",
			Buckets: prometheus.ExponentialBuckets(10, 10, 7),
		},
	)

	PlansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mdp_plans_total",
			Help: "Count of plan requests by outcome (solved, cached, rejected, error).",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(SolveDurationSeconds, ReachableStates, PlansTotal)
}
