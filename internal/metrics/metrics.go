// Package metrics defines the Prometheus collectors for settle.
// Collectors are registered with the default registry via promauto; the API
// server exposes them on /metrics when enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComputationsTotal counts settlement computations.
	ComputationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "settle",
		Name:      "computations_total",
		Help:      "Total number of settlement computations.",
	})

	// ComputationDuration observes the wall time of one full pipeline pass.
	ComputationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "settle",
		Name:      "computation_duration_seconds",
		Help:      "Duration of settlement computations.",
		Buckets:   prometheus.DefBuckets,
	})

	// WarningsTotal counts data-quality warnings by reason
	// (unknown_payer, unresolvable_sharers).
	WarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settle",
		Name:      "warnings_total",
		Help:      "Data-quality warnings emitted during balance calculation.",
	}, []string{"reason"})

	// TransfersTotal counts emitted transfers by view (detailed, simplified).
	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settle",
		Name:      "transfers_total",
		Help:      "Settlement transfers produced, by output view.",
	}, []string{"view"})

	// HTTPRequestsTotal counts API requests by route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "settle",
		Name:      "http_requests_total",
		Help:      "HTTP API requests.",
	}, []string{"route", "status"})
)
