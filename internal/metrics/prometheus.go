// Package metrics provides Prometheus metrics for the drill backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every metric and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	answersRecorded *prometheus.CounterVec
	resets          *prometheus.CounterVec
	catalogErrors   prometheus.Counter
	storeErrors     *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a Manager. Without WithRegistry the metrics go on a
// private registry, so tests can build as many managers as they like.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "kakomon",
		subsystem:        "progress",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.answersRecorded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "answers_recorded_total",
		Help:      "Answers recorded, by result",
	}, []string{"result"})

	m.resets = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resets_total",
		Help:      "Reset requests, by outcome",
	}, []string{"outcome"})

	m.catalogErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_errors_total",
		Help:      "Failed attempts to load the question catalog",
	})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Progress store failures, by operation",
	}, []string{"operation"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordAnswer counts a recorded answer.
func (m *Manager) RecordAnswer(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.answersRecorded.WithLabelValues(result).Inc()
}

// RecordReset counts a reset request; performed is false when it was declined.
func (m *Manager) RecordReset(performed bool) {
	outcome := "declined"
	if performed {
		outcome = "confirmed"
	}
	m.resets.WithLabelValues(outcome).Inc()
}

// RecordCatalogError counts a failed catalog load.
func (m *Manager) RecordCatalogError() {
	m.catalogErrors.Inc()
}

// RecordStoreError counts a failed store operation ("save", "clear").
func (m *Manager) RecordStoreError(operation string) {
	m.storeErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest observes one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, took time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(float64(took) / float64(time.Millisecond))
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
