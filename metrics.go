package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"lg/energy-estimator-go-api/internal/energy"
)

// estimateMetrics counts calculations. Labels are the enum values only, so
// cardinality is bounded by the form's select options.
type estimateMetrics struct {
	estimates *prometheus.CounterVec
	warned    prometheus.Counter
}

func newEstimateMetrics(reg prometheus.Registerer) *estimateMetrics {
	m := &estimateMetrics{
		estimates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "energy_estimator",
				Name:      "estimates_total",
				Help:      "Count of energy estimates by sex, activity level and goal.",
			},
			[]string{"sex", "activity_level", "goal_level"},
		),
		warned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "energy_estimator",
				Name:      "estimates_with_warnings_total",
				Help:      "Count of energy estimates whose input produced at least one warning.",
			},
		),
	}
	reg.MustRegister(m.estimates, m.warned)
	return m
}

func (m *estimateMetrics) observe(p energy.InputProfile, warnings int) {
	m.estimates.WithLabelValues(string(p.Sex), string(p.ActivityLevel), string(p.GoalLevel)).Inc()
	if warnings > 0 {
		m.warned.Inc()
	}
}
