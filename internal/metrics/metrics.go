// Package metrics defines Prometheus metrics for the kinship service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kinship_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinship_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinship_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	DiscoveryDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kinship_discovery_depth",
			Help:    "Requested discovery depth after clamping",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		},
	)

	DiscoveryResults = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kinship_discovery_results_total",
			Help: "Total relatives returned by discovery queries",
		},
	)

	PathLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kinship_path_length",
			Help:    "Node count of found connection paths",
			Buckets: prometheus.LinearBuckets(1, 2, 12),
		},
	)

	WatchConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kinship_watch_connections",
			Help: "Active discovery watch WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		DiscoveryDepth, DiscoveryResults, PathLength,
		WatchConnections,
	)
}
