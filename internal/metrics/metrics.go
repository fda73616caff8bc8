// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package metrics defines the Prometheus instrumentation for the event
// cache-and-filter pipeline. The debug server exposes these on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventFetchesTotal counts calendar API fetch attempts by outcome.
	EventFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcal_event_fetches_total",
			Help: "Total event list fetch attempts against the calendar API",
		},
		[]string{"result"}, // "success", "failure"
	)

	// EventFetchDuration observes calendar API fetch latency.
	EventFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rpcal_event_fetch_duration_seconds",
			Help:    "Duration of event list fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ReferenceFetchesTotal counts category/rating reference list fetches.
	ReferenceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcal_reference_fetches_total",
			Help: "Total reference list fetch attempts",
		},
		[]string{"list", "result"}, // list: "categories", "ratings"
	)

	// CachedEvents tracks the size of the current event snapshot.
	CachedEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rpcal_cached_events",
			Help: "Number of events in the current cache snapshot",
		},
	)

	// SnapshotAgeSeconds tracks elapsed time since the last successful fetch.
	SnapshotAgeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rpcal_snapshot_age_seconds",
			Help: "Age of the current cache snapshot in seconds",
		},
	)

	// FilteredEvents tracks the size of each derived view.
	FilteredEvents = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rpcal_filtered_events",
			Help: "Number of events in each filtered view",
		},
		[]string{"scope"}, // "flat", "server", "datacenter", "region"
	)

	// FilterDuration observes filter pipeline runtime.
	FilterDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rpcal_filter_duration_seconds",
			Help:    "Duration of filter pipeline passes in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// CircuitBreakerState tracks breaker state (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rpcal_circuit_breaker_state",
			Help: "Circuit breaker state: 0=closed, 1=half-open, 2=open",
		},
		[]string{"breaker"},
	)

	// CircuitBreakerTransitions counts breaker state changes.
	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcal_circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"breaker", "from", "to"},
	)

	// CircuitBreakerRequests counts requests passing through each breaker.
	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpcal_circuit_breaker_requests_total",
			Help: "Total circuit breaker request outcomes",
		},
		[]string{"breaker", "result"}, // "success", "failure", "rejected"
	)
)
