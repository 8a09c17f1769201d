package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the chat core's Prometheus metrics. A dedicated
// registry keeps the metrics endpoint free of default collectors.
type Metrics struct {
	registry        *prometheus.Registry
	toolInvocations *prometheus.CounterVec
	toolDuration    *prometheus.HistogramVec
	chatTurns       *prometheus.CounterVec
}

// NewMetrics creates and registers the metric collectors
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	toolInvocations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_total",
			Help: "Tool invocations by operation, role and outcome",
		},
		[]string{"operation", "role", "status"},
	)

	toolDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tool_invocation_duration_seconds",
			Help:    "Time taken to dispatch and run a tool invocation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	chatTurns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Completed chat turns by role",
		},
		[]string{"role"},
	)

	registry.MustRegister(toolInvocations, toolDuration, chatTurns)

	return &Metrics{
		registry:        registry,
		toolInvocations: toolInvocations,
		toolDuration:    toolDuration,
		chatTurns:       chatTurns,
	}
}

// Registry returns the Prometheus registry for the metrics endpoint
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordInvocation records one tool invocation. An empty errKind means
// the invocation succeeded.
func (m *Metrics) RecordInvocation(operation, role, errKind string, duration time.Duration) {
	status := "ok"
	if errKind != "" {
		status = errKind
	}
	m.toolInvocations.WithLabelValues(operation, role, status).Inc()
	m.toolDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordChatTurn records one completed chat turn
func (m *Metrics) RecordChatTurn(role string) {
	m.chatTurns.WithLabelValues(role).Inc()
}
