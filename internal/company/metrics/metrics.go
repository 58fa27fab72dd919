// Package metrics provides observability for the employer register module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks register mutations and CIN lookup traffic.
type Metrics struct {
	Mutations      *prometheus.CounterVec
	CINLookups     *prometheus.CounterVec
	LookupDuration prometheus.Histogram
}

// New registers and returns company metrics.
func New() *Metrics {
	return &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ficlear_company_mutations_total",
			Help: "Total employer register mutations by action",
		}, []string{"action"}),

		CINLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ficlear_company_cin_lookups_total",
			Help: "Total CIN lookups by outcome",
		}, []string{"outcome"}), // outcome: "hit", "miss", "error"

		LookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ficlear_company_cin_lookup_duration_seconds",
			Help:    "Duration of CIN lookups against the company registry",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementMutation records one register mutation.
func (m *Metrics) IncrementMutation(action string) {
	if m != nil {
		m.Mutations.WithLabelValues(action).Inc()
	}
}

// ObserveLookup records a CIN lookup and its duration.
func (m *Metrics) ObserveLookup(outcome string, d time.Duration) {
	if m != nil {
		m.CINLookups.WithLabelValues(outcome).Inc()
		m.LookupDuration.Observe(d.Seconds())
	}
}
