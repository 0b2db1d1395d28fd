// Package metrics exposes the process-wide Prometheus collectors. They are
// registered on the default registry at init and served by the HTTP API's
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasbot_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tasbot_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	QueriesByRoute = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasbot_queries_total",
			Help: "Queries processed, by classifier route",
		},
		[]string{"route"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasbot_fallbacks_total",
			Help: "Web-search fallbacks served, by reason",
		},
		[]string{"reason"},
	)

	ActiveLoops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tasbot_active_loops",
			Help: "Sessions holding a live reasoning loop",
		},
	)
)
