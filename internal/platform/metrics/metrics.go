// Package metrics exposes Prometheus instrumentation for the analytics service.
// Collectors are registered on the Registerer passed to NewRecorder; nothing is
// registered globally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance_engine"

// Outcome labels for Calculations.
const (
	OutcomeOK             = "ok"
	OutcomeError          = "error"
	OutcomeNonConvergence = "non_convergence"
)

// Recorder records analytics calculation metrics.
type Recorder struct {
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Analytics calculations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Wall time of analytics calculations, collaborator calls included.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"operation"}),
	}
}

// Observe records one calculation of operation that started at start.
// A nil Recorder is a no-op.
func (r *Recorder) Observe(operation, outcome string, start time.Time) {
	if r == nil {
		return
	}
	r.calculations.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Calculations returns the counter for operation and outcome.
func (r *Recorder) Calculations(operation, outcome string) prometheus.Counter {
	return r.calculations.WithLabelValues(operation, outcome)
}
