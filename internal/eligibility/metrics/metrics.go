// Package metrics provides observability for the eligibility engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks eligibility check traffic and outcomes.
type Metrics struct {
	Checks        prometheus.Counter
	Verdicts      *prometheus.CounterVec
	CheckDuration prometheus.Histogram
}

// New registers and returns eligibility metrics.
func New() *Metrics {
	return &Metrics{
		Checks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ficlear_eligibility_checks_total",
			Help: "Total eligibility check requests evaluated",
		}),

		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ficlear_eligibility_verdicts_total",
			Help: "Per-bank verdicts by outcome",
		}, []string{"outcome"}), // outcome: "eligible", "ineligible"

		CheckDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ficlear_eligibility_check_duration_seconds",
			Help:    "End-to-end duration of one eligibility check",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// ObserveCheck records one finished check and its verdict split.
func (m *Metrics) ObserveCheck(eligible, total int, d time.Duration) {
	if m != nil {
		m.Checks.Inc()
		m.Verdicts.WithLabelValues("eligible").Add(float64(eligible))
		m.Verdicts.WithLabelValues("ineligible").Add(float64(total - eligible))
		m.CheckDuration.Observe(d.Seconds())
	}
}
