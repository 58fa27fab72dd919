// Package metrics provides observability for the lender catalog module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks catalog mutation volume.
type Metrics struct {
	Mutations *prometheus.CounterVec
	Imported  prometheus.Counter
}

// New registers and returns catalog metrics.
func New() *Metrics {
	return &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ficlear_bank_mutations_total",
			Help: "Total lender catalog mutations by action",
		}, []string{"action"}),

		Imported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ficlear_bank_imported_total",
			Help: "Total lender records loaded through bulk import",
		}),
	}
}

// IncrementMutation records one catalog mutation.
func (m *Metrics) IncrementMutation(action string) {
	if m != nil {
		m.Mutations.WithLabelValues(action).Inc()
	}
}

// AddImported records records loaded by a bulk import.
func (m *Metrics) AddImported(n int) {
	if m != nil {
		m.Imported.Add(float64(n))
	}
}
