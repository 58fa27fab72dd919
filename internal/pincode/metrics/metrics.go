// Package metrics provides observability for the postal directory module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks directory search traffic and import volume.
type Metrics struct {
	Searches       *prometheus.CounterVec
	Imported       prometheus.Counter
	ImportDuration prometheus.Histogram
}

// New registers and returns directory metrics.
func New() *Metrics {
	return &Metrics{
		Searches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ficlear_pincode_searches_total",
			Help: "Total postal directory searches by kind",
		}, []string{"kind"}), // kind: "pincode", "area"

		Imported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ficlear_pincode_imported_total",
			Help: "Total postal records loaded through bulk import",
		}),

		ImportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ficlear_pincode_import_duration_seconds",
			Help:    "Duration of postal directory bulk imports",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// IncrementSearch records one directory search.
func (m *Metrics) IncrementSearch(kind string) {
	if m != nil {
		m.Searches.WithLabelValues(kind).Inc()
	}
}

// ObserveImport records a finished bulk import.
func (m *Metrics) ObserveImport(n int, d time.Duration) {
	if m != nil {
		m.Imported.Add(float64(n))
		m.ImportDuration.Observe(d.Seconds())
	}
}
