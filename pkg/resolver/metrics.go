package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	urlsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "svcurls_resolver_urls_total",
			Help: "Total number of URLs resolved, by kind",
		},
		[]string{"kind"},
	)

	addressesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "svcurls_resolver_addresses_skipped_total",
			Help: "Total number of endpoint addresses skipped due to unusable IPs",
		},
	)
)
