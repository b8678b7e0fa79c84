package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// Metrics is the process-wide prometheus surface. It satisfies
// services.MutationObserver without importing it.
type Metrics struct {
	log      *logger.Logger
	registry *prometheus.Registry

	mutations   *prometheus.CounterVec
	bulkRows    *prometheus.CounterVec
	httpTotal   *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
	jobRuns     *prometheus.CounterVec
}

func NewMetrics(log *logger.Logger) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		log:      log.With("component", "Metrics"),
		registry: registry,
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_mutations_total",
				Help: "CRM mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		bulkRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_bulk_rows_total",
				Help: "Rows processed by bulk customer creation",
			},
			[]string{"outcome"},
		),
		httpTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crm_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_job_runs_total",
				Help: "Scheduled job runs by job and outcome",
			},
			[]string{"job", "outcome"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) MutationFinished(operation, outcome string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) BulkRowFinished(outcome string) {
	if m == nil {
		return
	}
	m.bulkRows.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) JobFinished(job string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.jobRuns.WithLabelValues(job, outcome).Inc()
}
