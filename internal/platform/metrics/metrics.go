package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry and the collectors the service reports to.
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	authEvents    *prometheus.CounterVec
	entries       *prometheus.CounterVec
	storageErrors prometheus.Counter
}

// New creates the collectors under namespace/subsystem and registers the Go runtime collector.
func New(namespace, subsystem string) *Metrics {
	ns, sub := fmtFixer(namespace), fmtFixer(subsystem)
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub,
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: sub,
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub,
			Name: "auth_events_total",
			Help: "Registrations, logins and logouts by outcome.",
		}, []string{"event", "outcome"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub,
			Name: "entries_created_total",
			Help: "Journal entries created, split by whether an attachment was stored.",
		}, []string{"attachment"}),
		storageErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub,
			Name: "attachment_storage_errors_total",
			Help: "Attachment writes or cleanups that failed.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.httpRequests,
		m.httpLatency,
		m.authEvents,
		m.entries,
		m.storageErrors,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AuthEvent(event, outcome string) {
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) EntryCreated(withAttachment bool) {
	label := "false"
	if withAttachment {
		label = "true"
	}
	m.entries.WithLabelValues(label).Inc()
}

func (m *Metrics) StorageError() {
	m.storageErrors.Inc()
}

// fmtFixer makes a name safe for Prometheus.
func fmtFixer(s string) string {
	return strings.NewReplacer("-", "_", ".", "_", "/", "_", " ", "_").Replace(s)
}
