package explorer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/aeexplorer/internal/custompromauto"
)

var (
	failedActions = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "failed_actions_total",
		Help:      "Number of store actions that failed and raised the error flag",
	}, []string{"resource"})

	mergedRecords = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "merged_records_total",
		Help:      "Number of fetched records written into store state",
	}, []string{"resource"})

	chainHeight = custompromauto.Auto().NewGauge(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "chain_height",
		Help:      "Last observed key block height",
	})

	failedHeightPolls = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "failed_height_polls_total",
		Help:      "Number of failed current height retrievals",
	})
)
