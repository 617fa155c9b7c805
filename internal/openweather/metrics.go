package openweather

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_upstream_requests_total",
		Help: "Number of requests sent to the weather provider by outcome.",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "weather_upstream_request_duration_seconds",
		Help:    "Latency of requests sent to the weather provider.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
	}, []string{"endpoint"})
)
