package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check metrics
var (
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mxverify_checks_total",
			Help: "Total number of address checks by resulting status",
		},
		[]string{"status"}, // valid, no_domain, no_mx, timeout, invalid_format
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mxverify_batch_size",
			Help:    "Number of addresses per batch check",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// DNS metrics
var (
	LookupsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mxverify_dns_lookups_in_flight",
			Help: "Number of currently outstanding MX lookups",
		},
	)

	LookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mxverify_dns_lookup_duration_seconds",
			Help:    "Duration of MX lookups including IDNA encoding",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Domain cache metrics
var (
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mxverify_cache_hits_total",
			Help: "Total number of domain cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mxverify_cache_misses_total",
			Help: "Total number of domain cache misses",
		},
	)
)
