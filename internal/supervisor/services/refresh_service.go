// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package services contains suture.Service wrappers for the long-running
// pieces of the application.
package services

import (
	"context"
	"time"
)

// Refresher is the tick entry point of the refresh controller.
type Refresher interface {
	RefreshEvents(forceRefresh bool)
}

// RefreshService drives the refresh controller on a fixed tick, standing
// in for the GUI render loop that drives it in a plugin host.
type RefreshService struct {
	refresher Refresher
	interval  time.Duration
}

// NewRefreshService creates the ticking driver. The interval is the poll
// cadence, not the cache staleness threshold; the controller applies its
// own staleness check on every tick.
func NewRefreshService(refresher Refresher, interval time.Duration) *RefreshService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &RefreshService{refresher: refresher, interval: interval}
}

// Serve implements suture.Service. It ticks until ctx is cancelled.
func (s *RefreshService) Serve(ctx context.Context) error {
	// Immediate first tick so startup does not wait a full interval.
	s.refresher.RefreshEvents(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresher.RefreshEvents(false)
		}
	}
}

// String names the service in supervisor logs.
func (s *RefreshService) String() string {
	return "refresh-loop"
}
