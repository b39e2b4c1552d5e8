package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the site. Each Server carries
// its own registry so tests can run servers side by side without duplicate
// registration.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	liveSessions prometheus.Gauge
	liveEvents   *prometheus.CounterVec
	prefSaves    prometheus.Counter
	toastsShown  *prometheus.CounterVec
}

// NewMetrics creates the metric set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verdana",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by path and status",
		}, []string{"path", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "verdana",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "verdana",
			Name:      "live_sessions",
			Help:      "Number of active live WebSocket sessions",
		}),

		liveEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verdana",
			Name:      "live_events_total",
			Help:      "Total live events processed by status",
		}, []string{"status"}),

		prefSaves: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "verdana",
			Name:      "pref_saves_total",
			Help:      "Total font preference saves",
		}),

		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verdana",
			Name:      "toasts_shown_total",
			Help:      "Total toasts shown by level",
		}, []string{"level"}),
	}
}

// Handler returns the /metrics endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
