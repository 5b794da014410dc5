package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink is a Sink that records span durations and event counts as
// Prometheus metrics, leaving log output to an underlying Logger.
type PrometheusSink struct {
	Logger

	spanDuration *prometheus.HistogramVec
	eventsTotal  *prometheus.CounterVec
}

// NewPrometheusSink registers the sink's metrics against reg (or the
// default registerer when reg is nil) and wraps logger for log output.
func NewPrometheusSink(logger Logger, reg prometheus.Registerer) *PrometheusSink {
	if logger == nil {
		logger = NopLogger{}
	}
	factory := promauto.With(reg)
	return &PrometheusSink{
		Logger: logger,
		spanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tr181compare",
				Subsystem: "span",
				Name:      "duration_seconds",
				Help:      "Duration of observed spans, by component and operation.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"component", "operation", "success"},
		),
		eventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tr181compare",
				Subsystem: "event",
				Name:      "total",
				Help:      "Total structured events recorded, by category and level.",
			},
			[]string{"category", "level"},
		),
	}
}

// RecordEvent implements Sink.
func (p *PrometheusSink) RecordEvent(e Event) {
	p.eventsTotal.WithLabelValues(string(e.Category), string(e.Level)).Inc()
}

// RecordSpan implements Sink.
func (p *PrometheusSink) RecordSpan(s Span) {
	status := "false"
	if s.Success {
		status = "true"
	}
	p.spanDuration.WithLabelValues(s.Component, s.Operation, status).Observe(s.Duration().Seconds())
}

// Ensure PrometheusSink implements Sink at compile time.
var _ Sink = (*PrometheusSink)(nil)
