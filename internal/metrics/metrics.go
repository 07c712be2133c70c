// Package metrics provides Prometheus metrics for newsdesk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsdesk"

var (
	// CacheLookupsTotal counts article cache lookups by result (hit, miss).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of article cache lookups",
		},
		[]string{"result"},
	)

	// CacheErrorsTotal counts cache backend failures that were degraded to a bypass.
	CacheErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_errors_total",
			Help:      "Total number of cache backend errors",
		},
		[]string{"operation"},
	)

	// DatastoreRetriesTotal counts retried datastore attempts.
	DatastoreRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datastore_retries_total",
			Help:      "Total number of datastore attempts retried after a connectivity failure",
		},
		[]string{"operation"},
	)

	// DatastoreUnavailableTotal counts operations that exhausted their retry budget.
	DatastoreUnavailableTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datastore_unavailable_total",
			Help:      "Total number of datastore operations failing after all retries",
		},
		[]string{"operation"},
	)

	// InteractionTogglesTotal counts committed toggles by type and resulting state.
	InteractionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interaction_toggles_total",
			Help:      "Total number of committed interaction toggles",
		},
		[]string{"type", "state"},
	)

	// DuplicateInteractionsRemovedTotal counts rows deleted by the deduplicator.
	DuplicateInteractionsRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_interactions_removed_total",
			Help:      "Total number of duplicate interaction rows removed",
		},
	)

	// ViewIncrementsTotal counts asynchronous view increments by outcome.
	ViewIncrementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_increments_total",
			Help:      "Total number of article view increments by outcome",
		},
		[]string{"outcome"},
	)
)
