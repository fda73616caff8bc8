// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package events implements the event cache-and-filter pipeline: the
// refresh controller that keeps a snapshot of the remote event list, the
// filter engine that derives the flat and partitioned display views, and
// the timezone-aware window calculator behind the timeframe selectors.
package events

import (
	"time"

	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// ComputeWindow resolves a timeframe selector to a concrete UTC interval.
//
// All civil-date arithmetic runs in loc so the window boundaries land on
// local midnights even across DST transitions. Weeks start on Monday;
// a local-now falling on Sunday belongs to the week that started the
// previous Monday. Unrecognized selectors fall back to today's window.
//
// The Now selector returns the degenerate [now, now] window; its
// membership test is "event spans now", applied by the filter engine.
func ComputeWindow(tf models.Timeframe, nowUTC time.Time, loc *time.Location) (startUTC, endUTC time.Time) {
	nowUTC = nowUTC.UTC()
	switch tf {
	case models.TimeframeNow:
		return nowUTC, nowUTC
	case models.TimeframeNextHours:
		return nowUTC, nowUTC.Add(time.Hour)
	case models.TimeframeThisWeek:
		return weekWindow(nowUTC, loc)
	case models.TimeframeNextWeek:
		return weekWindow(nowUTC.AddDate(0, 0, 7), loc)
	default:
		return dayWindow(nowUTC, loc)
	}
}

// dayWindow is local midnight today through local midnight tomorrow.
func dayWindow(nowUTC time.Time, loc *time.Location) (time.Time, time.Time) {
	local := nowUTC.In(loc)
	year, month, day := local.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}

// weekWindow is the most recent local Monday midnight on or before the
// reference instant through the following Monday midnight.
func weekWindow(refUTC time.Time, loc *time.Location) (time.Time, time.Time) {
	local := refUTC.In(loc)

	// time.Weekday counts Sunday as 0; shift so Monday is day 0 of the
	// week and Sunday is day 6.
	daysSinceMonday := int(local.Weekday()) - 1
	if daysSinceMonday < 0 {
		daysSinceMonday = 6
	}

	year, month, day := local.Date()
	start := time.Date(year, month, day-daysSinceMonday, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day-daysSinceMonday+7, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}
