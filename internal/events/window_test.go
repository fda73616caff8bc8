// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package events

import (
	"testing"
	"time"

	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestComputeWindowNow(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	start, end := ComputeWindow(models.TimeframeNow, now, time.UTC)
	if !start.Equal(now) || !end.Equal(now) {
		t.Errorf("Now window = [%v, %v], want degenerate [%v, %v]", start, end, now, now)
	}
}

func TestComputeWindowNextHours(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	start, end := ComputeWindow(models.TimeframeNextHours, now, time.UTC)
	if !start.Equal(now) {
		t.Errorf("start = %v, want %v", start, now)
	}
	if !end.Equal(now.Add(time.Hour)) {
		t.Errorf("end = %v, want %v", end, now.Add(time.Hour))
	}
}

func TestComputeWindowToday(t *testing.T) {
	// 02:00 UTC on Aug 29 is still Aug 28 in New York (UTC-4 in summer).
	loc := mustLocation(t, "America/New_York")
	now := time.Date(2026, 8, 29, 2, 0, 0, 0, time.UTC)

	start, end := ComputeWindow(models.TimeframeToday, now, loc)

	wantStart := time.Date(2026, 8, 28, 0, 0, 0, 0, loc).UTC()
	wantEnd := time.Date(2026, 8, 29, 0, 0, 0, 0, loc).UTC()
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestComputeWindowThisWeekStartsMonday(t *testing.T) {
	// 2026-08-29 is a Saturday; the week began Monday the 24th.
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	start, end := ComputeWindow(models.TimeframeThisWeek, now, time.UTC)

	wantStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want Monday %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want next Monday %v", end, wantEnd)
	}
}

func TestComputeWindowSundayBelongsToPreviousMonday(t *testing.T) {
	// 2026-08-30 is a Sunday; its week still starts Monday the 24th.
	now := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	start, _ := ComputeWindow(models.TimeframeThisWeek, now, time.UTC)

	wantStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("Sunday week start = %v, want %v", start, wantStart)
	}
}

func TestComputeWindowNextWeekFollowsThisWeek(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	_, thisEnd := ComputeWindow(models.TimeframeThisWeek, now, time.UTC)
	nextStart, nextEnd := ComputeWindow(models.TimeframeNextWeek, now, time.UTC)

	if !nextStart.Equal(thisEnd) {
		t.Errorf("next week start = %v, want this week end %v", nextStart, thisEnd)
	}
	if got, want := nextEnd.Sub(nextStart), 7*24*time.Hour; got != want {
		t.Errorf("next week span = %v, want %v", got, want)
	}
}

func TestComputeWindowAcrossDSTTransition(t *testing.T) {
	// US DST ends 2026-11-01; that Sunday has 25 hours in New York.
	loc := mustLocation(t, "America/New_York")
	now := time.Date(2026, 11, 1, 12, 0, 0, 0, loc)

	start, end := ComputeWindow(models.TimeframeToday, now.UTC(), loc)
	if got, want := end.Sub(start), 25*time.Hour; got != want {
		t.Errorf("DST-end day span = %v, want %v", got, want)
	}

	// The boundaries must still land on local midnights.
	if h := start.In(loc).Hour(); h != 0 {
		t.Errorf("start local hour = %d, want 0", h)
	}
	if h := end.In(loc).Hour(); h != 0 {
		t.Errorf("end local hour = %d, want 0", h)
	}
}

func TestComputeWindowOrdering(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")
	now := time.Date(2026, 3, 9, 5, 0, 0, 0, time.UTC)
	for _, tf := range []models.Timeframe{
		models.TimeframeNow,
		models.TimeframeNextHours,
		models.TimeframeToday,
		models.TimeframeThisWeek,
		models.TimeframeNextWeek,
	} {
		start, end := ComputeWindow(tf, now, loc)
		if start.After(end) {
			t.Errorf("%v: start %v after end %v", tf, start, end)
		}
	}
}

func TestComputeWindowUnknownTimeframeFallsBackToToday(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	gotStart, gotEnd := ComputeWindow(models.Timeframe(99), now, time.UTC)
	wantStart, wantEnd := ComputeWindow(models.TimeframeToday, now, time.UTC)
	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Errorf("fallback window = [%v, %v], want today's [%v, %v]", gotStart, gotEnd, wantStart, wantEnd)
	}
}
