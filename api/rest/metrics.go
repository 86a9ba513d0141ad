package rest

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/aeexplorer/internal/custompromauto"
)

var requestsServed = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Namespace: custompromauto.Namespace,
	Name:      "api_requests_total",
	Help:      "Number of API requests served by route pattern",
}, []string{"pattern"})
