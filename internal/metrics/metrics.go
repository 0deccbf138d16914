package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service exports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	EntityOperations   *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	DeleteRejections   *prometheus.CounterVec
	CascadedDeletes    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry with the given name prefix.
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(prefix, reg, reg)
}

func NewWithRegistry(prefix string, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		gatherer: gatherer,

		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		EntityOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_entity_operations_total",
				Help: "Committed entity operations by kind and operation",
			},
			[]string{"kind", "operation"},
		),
		ValidationFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_validation_failures_total",
				Help: "Rule violations that rejected a create or update",
			},
			[]string{"kind", "rule"},
		),
		DeleteRejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_delete_rejections_total",
				Help: "Deletes refused by a restrict relation",
			},
			[]string{"parent", "child"},
		),
		CascadedDeletes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_cascaded_deletes_total",
				Help: "Rows removed by cascade, by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) Operation(kind, operation string) {
	if m == nil {
		return
	}
	m.EntityOperations.WithLabelValues(kind, operation).Inc()
}

func (m *Metrics) Violation(kind, rule string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(kind, rule).Inc()
}

func (m *Metrics) Rejection(parent, child string) {
	if m == nil {
		return
	}
	m.DeleteRejections.WithLabelValues(parent, child).Inc()
}

func (m *Metrics) Cascaded(kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.CascadedDeletes.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) Request(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	statusStr := strconv.Itoa(status)
	m.HTTPRequests.WithLabelValues(method, path, statusStr).Inc()
	m.HTTPDuration.WithLabelValues(method, path, statusStr).Observe(elapsed.Seconds())
}

// Handler exposes the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
