package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	streaksEvaluated  *prometheus.CounterVec
	habitsSkipped     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		streaksEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "habit_streaks_evaluated_total",
			Help: "Total habit streaks computed by analytics operation.",
		}, []string{"operation"}),
		habitsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "habit_streaks_skipped_total",
			Help: "Total habits left out of an analytics operation because they could not be evaluated.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.streaksEvaluated,
		m.habitsSkipped,
		collectors.NewGoCollector(),
	)

	return m
}

// GinMiddleware records request count and latency labelled by route pattern.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveStreaks(operation string, evaluated, skipped int) {
	if m == nil {
		return
	}
	m.streaksEvaluated.WithLabelValues(operation).Add(float64(evaluated))
	m.habitsSkipped.WithLabelValues(operation).Add(float64(skipped))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
