package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_cache_lookups_total",
		Help: "Cache lookups by resource kind and result (hit or miss)",
	},
	[]string{"kind", "result"},
)

func recordLookup(key string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	cacheLookups.WithLabelValues(kindOf(key), result).Inc()
}
