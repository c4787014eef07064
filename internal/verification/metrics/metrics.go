// Package metrics provides Prometheus metrics for the verification engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all verification engine metrics.
type Metrics struct {
	VerificationsTotal *prometheus.CounterVec   // Final decisions by status
	CheckOutcomesTotal *prometheus.CounterVec   // Per-check dispositions by check name
	VerifyLatency      prometheus.Histogram     // End-to-end single verification latency
	LookupLatency      *prometheus.HistogramVec // Registry lookup latency by outcome
	BatchSize          prometheus.Histogram     // Offers per batch request
	SystemFaultsTotal  prometheus.Counter       // Faults converted to NEEDS_REVIEW
}

// New creates a new Metrics instance with all metrics registered.
func New() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loadguard_verifications_total",
			Help: "Total load verifications by final status",
		}, []string{"status"}),

		CheckOutcomesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loadguard_check_outcomes_total",
			Help: "Per-check dispositions by check name",
		}, []string{"check", "disposition"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadguard_verify_duration_seconds",
			Help:    "Duration of a single load verification",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),

		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loadguard_registry_lookup_duration_seconds",
			Help:    "Duration of carrier registry lookups by outcome",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"status"}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadguard_batch_size",
			Help:    "Number of offers per batch verification request",
			Buckets: []float64{1, 5, 10, 25, 50},
		}),

		SystemFaultsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loadguard_system_faults_total",
			Help: "Internal faults degraded to NEEDS_REVIEW instead of propagating",
		}),
	}
}

// IncrementStatus records a final verification decision.
func (m *Metrics) IncrementStatus(status string) {
	m.VerificationsTotal.WithLabelValues(status).Inc()
}

// IncrementCheck records one check disposition.
func (m *Metrics) IncrementCheck(check, disposition string) {
	m.CheckOutcomesTotal.WithLabelValues(check, disposition).Inc()
}

// ObserveVerifyLatency records the duration of a full verification.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	m.VerifyLatency.Observe(d.Seconds())
}

// ObserveLookupLatency records the duration of a registry lookup.
func (m *Metrics) ObserveLookupLatency(status string, d time.Duration) {
	m.LookupLatency.WithLabelValues(status).Observe(d.Seconds())
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSize.Observe(float64(n))
}

// IncrementSystemFaults records a fault degraded at the engine boundary.
func (m *Metrics) IncrementSystemFaults() {
	m.SystemFaultsTotal.Inc()
}
