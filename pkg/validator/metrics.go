package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datacontract_validate_duration_seconds",
			Help:    "Duration of one contract validation run in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
	)

	validateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datacontract_validate_total",
			Help: "Total number of contract validation runs",
		},
		[]string{"status"}, // pass or fail
	)

	violationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datacontract_violation_total",
			Help: "Total number of violations detected",
		},
		[]string{"kind"},
	)
)

// observeValidation records run metrics from a finished report.
func observeValidation(r *Report) {
	validateDuration.Observe(r.Summary.Duration.Seconds())
	validateTotal.WithLabelValues(string(r.Summary.Status)).Inc()
	for _, v := range r.Violations {
		violationTotal.WithLabelValues(string(v.Kind)).Inc()
	}
}
