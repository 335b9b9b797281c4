package otelbackend

import (
	"github.com/luxas/deklarative/activity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus metrics of a Backend.
type Metrics struct {
	// Records counts completed records by level and kind.
	Records *prometheus.CounterVec
	// ActivitiesOpened counts opened contexts by source.
	ActivitiesOpened *prometheus.CounterVec
	// ActivitiesActive is the number of contexts not yet disposed.
	ActivitiesActive prometheus.Gauge
	// Outcomes counts activity exits by outcome.
	Outcomes *prometheus.CounterVec
	// InternalErrors counts faults of the backend itself.
	InternalErrors prometheus.Counter
	// InvalidUsage counts misuse of the activity API.
	InvalidUsage prometheus.Counter
}

// NewMetrics registers the metrics with prometheus.DefaultRegisterer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the metrics with registry, or
// prometheus.DefaultRegisterer if nil.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Records: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_records_total",
			Help: "The total number of records written, by level and kind",
		}, []string{"level", "kind"}),
		ActivitiesOpened: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_contexts_opened_total",
			Help: "The total number of activity contexts opened, by source",
		}, []string{"source"}),
		ActivitiesActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "activity_contexts_active",
			Help: "The current number of activity contexts not yet disposed",
		}),
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_outcomes_total",
			Help: "The total number of activity outcomes written, by outcome",
		}, []string{"outcome"}),
		InternalErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "activity_internal_errors_total",
			Help: "The total number of internal faults of the tracing backend",
		}),
		InvalidUsage: factory.NewCounter(prometheus.CounterOpts{
			Name: "activity_invalid_usage_total",
			Help: "The total number of invalid uses of the activity API",
		}),
	}
}

func (m *Metrics) opened(source string) {
	if m == nil {
		return
	}
	m.ActivitiesOpened.WithLabelValues(source).Inc()
	m.ActivitiesActive.Inc()
}

func (m *Metrics) disposed() {
	if m == nil {
		return
	}
	m.ActivitiesActive.Dec()
}

func (m *Metrics) record(opts activity.RecordOptions) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues(opts.Level.Severity().String(), opts.Kind.String()).Inc()
	if opts.Outcome != activity.OutcomeNone {
		m.Outcomes.WithLabelValues(opts.Outcome.String()).Inc()
	}
}

func (m *Metrics) internalError() {
	if m == nil {
		return
	}
	m.InternalErrors.Inc()
}

func (m *Metrics) invalidUsage() {
	if m == nil {
		return
	}
	m.InvalidUsage.Inc()
}
