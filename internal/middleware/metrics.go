package middleware

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/aeexplorer/internal/custompromauto"
)

var requestsTotal = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Namespace: custompromauto.Namespace,
	Name:      "middleware_requests_total",
	Help:      "Number of middleware requests by response status code",
}, []string{"code"})

var requestDuration = custompromauto.Auto().NewHistogram(prometheus.HistogramOpts{
	Namespace: custompromauto.Namespace,
	Name:      "middleware_request_duration_seconds",
	Help:      "Latency of middleware requests that received a response",
	Buckets:   prometheus.DefBuckets,
})
