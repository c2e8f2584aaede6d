package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labdesk_audit_events_emitted_total",
		Help: "Total audit events appended to the configured sink, by category",
	}, []string{"category"})

	emitFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "labdesk_audit_emit_failures_total",
		Help: "Total audit events dropped because the sink append failed",
	})

	workerDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "labdesk_audit_worker_dropped_total",
		Help: "Total audit events dropped because the worker inbox was full",
	})
)
