package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "problem_selection"

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// Selection outcomes recorded on selection_attempts_total
const (
	OutcomeSelected         = "selected"
	OutcomeAlreadySelected  = "already_selected"
	OutcomeCapacityExceeded = "capacity_exceeded"
	OutcomeNotFound         = "not_found"
	OutcomeForbidden        = "forbidden"
	OutcomeInvalid          = "invalid"
	OutcomeTransient        = "transient"
	OutcomeError            = "error"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	registry          *prometheus.Registry
	requestTotal      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
	rateLimitHits     *prometheus.CounterVec
	selectionAttempts *prometheus.CounterVec
	selectionRetries  prometheus.Counter
}

// New creates the collectors and registers them on registry
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "rate_limit_hits_total",
			Help:      "Number of rate-limited responses",
		}, []string{"route", "key"}),
		selectionAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_attempts_total",
			Help:      "Selection requests by final outcome",
		}, []string{"outcome"}),
		selectionRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_retries_total",
			Help:      "Selection transactions retried after a transient store error",
		}),
	}

	registry.MustRegister(
		m.requestTotal,
		m.requestLatency,
		m.rateLimitHits,
		m.selectionAttempts,
		m.selectionRetries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// ObserveRequest records one handled request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// RecordRateLimitHit counts a throttled request
func (m *Metrics) RecordRateLimitHit(route, key string) {
	if m == nil {
		return
	}
	m.rateLimitHits.With(prometheus.Labels{"route": route, "key": key}).Inc()
}

// RecordSelection counts a finished selection request by outcome
func (m *Metrics) RecordSelection(outcome string) {
	if m == nil {
		return
	}
	m.selectionAttempts.With(prometheus.Labels{"outcome": outcome}).Inc()
}

// RecordSelectionRetry counts a retried selection transaction
func (m *Metrics) RecordSelectionRetry() {
	if m == nil {
		return
	}
	m.selectionRetries.Inc()
}

// SelectionCount returns the current value of selection_attempts_total for outcome
func (m *Metrics) SelectionCount(outcome string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.selectionAttempts.With(prometheus.Labels{"outcome": outcome}))
}

// RetryCount returns the current value of selection_retries_total
func (m *Metrics) RetryCount() float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.selectionRetries)
}

func counterValue(c prometheus.Counter) float64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}
