package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	mutations     *prometheus.CounterVec
	events        *prometheus.CounterVec
	eventFailures prometheus.Counter
	janitorRuns   *prometheus.CounterVec
	trimmed       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoard",
			Name:      "record_mutations_total",
			Help:      "Record mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoard",
			Name:      "events_appended_total",
			Help:      "Events appended to the log by type.",
		}, []string{"type"}),
		eventFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoard",
			Name:      "event_append_failures_total",
			Help:      "Events that could not be appended after a committed mutation.",
		}),
		janitorRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoard",
			Name:      "janitor_runs_total",
			Help:      "Janitor clean cycles by trigger.",
		}, []string{"trigger"}),
		trimmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoard",
			Name:      "janitor_trimmed_total",
			Help:      "Log entries removed by retention.",
		}, []string{"log"}),
	}
	registry.MustRegister(m.mutations, m.events, m.eventFailures, m.janitorRuns, m.trimmed)
	return m
}

func (m *Metrics) Mutation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.mutations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) EventAppended(eventType string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(eventType).Inc()
}

func (m *Metrics) EventFailed() {
	if m == nil {
		return
	}
	m.eventFailures.Inc()
}

func (m *Metrics) JanitorRun(forced bool) {
	if m == nil {
		return
	}
	trigger := "schedule"
	if forced {
		trigger = "forced"
	}
	m.janitorRuns.WithLabelValues(trigger).Inc()
}

func (m *Metrics) Trimmed(log string, count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.trimmed.WithLabelValues(log).Add(float64(count))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
