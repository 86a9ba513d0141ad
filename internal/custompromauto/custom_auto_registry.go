package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric registered by the explorer.
const Namespace = "aeexplorer"

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	auto = promauto.With(registry)
}

// Auto returns a factory registering into the explorer's private registry.
func Auto() promauto.Factory {
	return auto
}

// Registry returns the registry served on /metrics.
func Registry() *prometheus.Registry {
	return registry
}
