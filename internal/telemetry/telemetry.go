// Package telemetry owns the process-wide Prometheus registry and the
// instruments the server records into.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry bundles the registry with every instrument the service uses.
// A single instance is shared across handlers.
type Telemetry struct {
	registry *prometheus.Registry

	BillsLoaded prometheus.Gauge
	RawSkipped  prometheus.Gauge
	Exports     prometheus.Counter
	Searches    prometheus.Counter

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// New builds a registry with the service's instruments registered on it.
func New() *Telemetry {
	t := &Telemetry{
		registry: prometheus.NewRegistry(),
		BillsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "billtracker_bills_loaded",
			Help: "Number of bills in the loaded dataset.",
		}),
		RawSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "billtracker_raw_records_skipped",
			Help: "Raw record files skipped while loading the dataset.",
		}),
		Exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billtracker_csv_exports_total",
			Help: "CSV export downloads served.",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "billtracker_searches_total",
			Help: "Non-empty search queries executed.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billtracker_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "path", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billtracker_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	t.registry.MustRegister(t.BillsLoaded, t.RawSkipped, t.Exports, t.Searches, t.requests, t.durations)
	return t
}

// ObserveRequest records one served request.
func (t *Telemetry) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	t.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	t.durations.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler exposes the registry in Prometheus text format.
func (t *Telemetry) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}
