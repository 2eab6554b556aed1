// Package metrics provides Prometheus metrics for the dashboard service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service's metric instruments and their registry.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	datasetLoadDuration *prometheus.HistogramVec
	seasonLogLoads      prometheus.Counter
	chartRenderDuration prometheus.Histogram
	chartRenderErrors   prometheus.Counter
}

func New(namespace string) *Manager {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Manager{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		datasetLoadDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "CSV table load latency by file family.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"family"}),
		seasonLogLoads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "season_log_loads_total",
			Help:      "Lazy per-season rating log loads performed.",
		}),
		chartRenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_render_duration_seconds",
			Help:      "Comparison chart render latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		chartRenderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_render_errors_total",
			Help:      "Comparison chart renders that failed.",
		}),
	}
}

func (m *Manager) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Manager) ObserveDatasetLoad(family string, d time.Duration) {
	if m == nil {
		return
	}
	m.datasetLoadDuration.WithLabelValues(family).Observe(d.Seconds())
}

func (m *Manager) IncSeasonLogLoad() {
	if m == nil {
		return
	}
	m.seasonLogLoads.Inc()
}

func (m *Manager) ObserveChartRender(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.chartRenderDuration.Observe(d.Seconds())
	if err != nil {
		m.chartRenderErrors.Inc()
	}
}

// Handler serves the manager's registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
