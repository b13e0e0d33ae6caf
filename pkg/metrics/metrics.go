// Package metrics holds the Prometheus collectors shared by the catalog
// use cases, the rule cache and the background workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bincatalog"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// Operations counts use-case calls by operation and outcome. The outcome
	// is "ok" or the lower-cased error kind, e.g. "not_found".
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "operations_total",
		Help:      "Catalog use-case calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	// OperationDuration observes use-case latency in seconds.
	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "operation_duration_seconds",
		Help:      "Catalog use-case latency.",
		Buckets:   DefaultBuckets,
	}, []string{"operation"})

	// RuleCacheLookups counts rule-resolution cache lookups by result
	// (hit, miss, error).
	RuleCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rulecache",
		Name:      "lookups_total",
		Help:      "Rule resolution cache lookups by result.",
	}, []string{"result"})

	// ChangesPublished counts catalog change events handled by the worker
	// by entity and result (published, failed).
	ChangesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "worker",
		Name:      "changes_published_total",
		Help:      "Catalog change events published by the worker.",
	}, []string{"entity", "result"})
)
