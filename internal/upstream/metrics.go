package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_upstream_requests_total",
			Help: "Logical upstream calls by endpoint and outcome (retries not counted separately)",
		},
		[]string{"endpoint", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_upstream_request_seconds",
			Help:    "Time for a logical upstream call including retries and backoff",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"endpoint"},
	)
)

func recordCall(endpoint Endpoint, outcome string, d time.Duration) {
	upstreamRequests.WithLabelValues(string(endpoint), outcome).Inc()
	upstreamDuration.WithLabelValues(string(endpoint)).Observe(d.Seconds())
}
