package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the API's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	Simulations        *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macro_stress_http_requests_total",
				Help: "Total HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "macro_stress_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		Simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macro_stress_simulations_total",
				Help: "Projection runs by outcome",
			},
			[]string{"outcome"},
		),
		SimulationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "macro_stress_simulation_duration_seconds",
				Help:    "Time spent in the projection engine",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
	}
	m.registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Simulations,
		m.SimulationDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveSimulation records one engine run.
func (m *Metrics) ObserveSimulation(outcome string, d time.Duration) {
	m.Simulations.WithLabelValues(outcome).Inc()
	m.SimulationDuration.Observe(d.Seconds())
}

// Middleware counts requests per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
