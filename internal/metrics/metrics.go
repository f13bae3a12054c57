// Package metrics exposes Prometheus collectors for submissions and HTTP
// traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

const namespace = "eulerq"

// Metrics groups the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	SubmissionsStored   *prometheus.CounterVec
	SubmissionsRejected *prometheus.CounterVec
	SubmissionsFailed   prometheus.Counter
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SubmissionsStored: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_stored_total",
				Help:      "Total number of answers stored, by part",
			},
			[]string{"part"},
		),
		SubmissionsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_rejected_total",
				Help:      "Total number of submissions rejected by validation, by code",
			},
			[]string{"code"},
		),
		SubmissionsFailed: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "submissions_failed_total",
				Help:      "Total number of valid submissions the store could not persist",
			},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests, by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// SubmissionStored counts an answer written to the store.
func (m *Metrics) SubmissionStored(part domain.Part) {
	m.SubmissionsStored.WithLabelValues(part.String()).Inc()
}

// SubmissionRejected counts a submission refused for the given validation code.
func (m *Metrics) SubmissionRejected(code string) {
	m.SubmissionsRejected.WithLabelValues(code).Inc()
}

// SubmissionFailed counts a valid submission lost to a storage failure.
func (m *Metrics) SubmissionFailed() {
	m.SubmissionsFailed.Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
