// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package calendar

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/metrics"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// EventFetcher is the event list fetch contract the refresh controller
// consumes. Implemented by Client and by BreakerClient.
type EventFetcher interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
}

// BreakerClient wraps an EventFetcher with a circuit breaker so a dead or
// misconfigured API endpoint is not re-fetched on every staleness expiry.
// The breaker uses real time for its interval and timeout bookkeeping;
// tests exercise the wrapped client directly.
type BreakerClient struct {
	client EventFetcher
	cb     *gobreaker.CircuitBreaker[[]models.Event]
	name   string
}

// NewBreakerClient creates a circuit-breaking event fetcher.
// The circuit opens after 3 consecutive failures and probes again after
// 2 minutes; at most one trial request runs in the half-open state.
func NewBreakerClient(client EventFetcher) *BreakerClient {
	cbName := "calendar-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.Event](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Warn().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// FetchEvents implements EventFetcher with breaker protection.
func (b *BreakerClient) FetchEvents(ctx context.Context) ([]models.Event, error) {
	events, err := b.cb.Execute(func() ([]models.Event, error) {
		return b.client.FetchEvents(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return events, nil
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	default:
		return "open"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
