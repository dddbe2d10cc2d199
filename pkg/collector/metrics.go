package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "svcurls_collect_duration_seconds",
			Help:    "Duration of a full namespace collection in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	listTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svcurls_list_total",
			Help: "Total number of list calls, by resource and status",
		},
		[]string{"resource", "status"}, // status: success or error
	)
)
