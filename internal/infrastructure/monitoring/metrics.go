// Package monitoring provides Prometheus metrics collection
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	plansGeneratedTotal    *prometheus.CounterVec
	plansInfeasibleTotal   prometheus.Counter
	planDeviationCalories  prometheus.Histogram
	planGenerationDuration prometheus.Histogram

	// System metrics
	cacheOperations *prometheus.CounterVec
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		plansGeneratedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meal_plans_generated_total",
				Help: "Total number of generated meal plans by strategy",
			},
			[]string{"strategy"},
		),
		plansInfeasibleTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meal_plans_infeasible_total",
				Help: "Total number of plan requests that could not be satisfied",
			},
		),
		planDeviationCalories: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meal_plan_calorie_deviation",
				Help:    "Absolute deviation of generated plans from the calorie target",
				Buckets: []float64{0, 25, 50, 100, 150, 250, 500, 1000},
			},
		),
		planGenerationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meal_plan_generation_duration_seconds",
				Help:    "Time spent generating a meal plan",
				Buckets: prometheus.DefBuckets,
			},
		),

		cacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_operations_total",
				Help: "Total cache operations by type and result",
			},
			[]string{"operation", "result"},
		),
	}
}

// RecordHTTPRequest records metrics for one HTTP request
func (m *MetricsCollector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordPlanGenerated records a successfully generated plan
func (m *MetricsCollector) RecordPlanGenerated(strategy string, deviationCalories int, duration time.Duration) {
	m.plansGeneratedTotal.WithLabelValues(strategy).Inc()
	if deviationCalories < 0 {
		deviationCalories = -deviationCalories
	}
	m.planDeviationCalories.Observe(float64(deviationCalories))
	m.planGenerationDuration.Observe(duration.Seconds())
}

// RecordPlanInfeasible records a plan request that could not be satisfied
func (m *MetricsCollector) RecordPlanInfeasible() {
	m.plansInfeasibleTotal.Inc()
}

// RecordCacheOperation records a cache operation outcome
func (m *MetricsCollector) RecordCacheOperation(operation, result string) {
	m.cacheOperations.WithLabelValues(operation, result).Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
