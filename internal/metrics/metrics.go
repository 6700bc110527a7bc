// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DBQueryDuration tracks catalog query latency per operation.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_db_query_duration_seconds",
			Help:    "Duration of catalog queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// DBQueryErrors counts failed catalog queries per operation.
	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_db_query_errors_total",
			Help: "Total number of failed catalog queries",
		},
		[]string{"operation"},
	)

	// ResponseCache counts response cache lookups by result (hit, miss).
	ResponseCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_response_cache_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)

	// RateLimited counts requests rejected by the token bucket.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	// SearchEvents counts search event publishes by outcome (ok, error).
	SearchEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_search_events_total",
			Help: "Search events published to the broker",
		},
		[]string{"outcome"},
	)
)

// ObserveQuery records the duration of one query and counts it as failed
// when err is non-nil.
func ObserveQuery(operation string, d time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}
