package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the checkout module.
type Metrics struct {
	// Checkout outcomes by result and failure code ("" on success)
	Outcomes *prometheus.CounterVec

	// Full pipeline latency
	ProcessLatency prometheus.Histogram

	// Duration adjustments applied by the cable clamp
	Adjustments prometheus.Counter
}

// New creates a Metrics instance with all checkout module metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "labdesk_checkout_outcomes_total",
			Help: "Total checkout outcomes by result and failure code",
		}, []string{"result", "code"}),

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "labdesk_checkout_process_duration_seconds",
			Help:    "Duration of full checkout processing",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		Adjustments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "labdesk_checkout_duration_adjustments_total",
			Help: "Total requests whose duration was clamped by the cable rule",
		}),
	}
}

// IncrementOutcome records a checkout outcome.
func (m *Metrics) IncrementOutcome(result, code string) {
	if m != nil {
		m.Outcomes.WithLabelValues(result, code).Inc()
	}
}

// ObserveProcessLatency records the total pipeline duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}

// IncrementAdjustments records one applied duration clamp.
func (m *Metrics) IncrementAdjustments() {
	if m != nil {
		m.Adjustments.Inc()
	}
}
