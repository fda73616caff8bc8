// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package models

// Timeframe selects the window of roleplay events to display.
type Timeframe int

const (
	// TimeframeNow shows only events in progress at this instant.
	TimeframeNow Timeframe = iota

	// TimeframeNextHours shows events opening within the next hour.
	TimeframeNextHours

	// TimeframeToday shows events starting on the local calendar day.
	TimeframeToday

	// TimeframeThisWeek shows events starting in the local Monday-based week.
	TimeframeThisWeek

	// TimeframeNextWeek shows events starting in the following local week.
	TimeframeNextWeek
)

// timeframeNames maps config strings to selectors.
var timeframeNames = map[string]Timeframe{
	"now":        TimeframeNow,
	"next_hours": TimeframeNextHours,
	"today":      TimeframeToday,
	"this_week":  TimeframeThisWeek,
	"next_week":  TimeframeNextWeek,
}

// ParseTimeframe resolves a config string to a Timeframe. The second return
// is false for unrecognized values, which map to TimeframeToday.
func ParseTimeframe(s string) (Timeframe, bool) {
	if tf, ok := timeframeNames[s]; ok {
		return tf, true
	}
	return TimeframeToday, false
}

// String returns the config spelling of the timeframe.
func (t Timeframe) String() string {
	switch t {
	case TimeframeNow:
		return "now"
	case TimeframeNextHours:
		return "next_hours"
	case TimeframeToday:
		return "today"
	case TimeframeThisWeek:
		return "this_week"
	case TimeframeNextWeek:
		return "next_week"
	default:
		return "today"
	}
}

// Description returns the user-facing label shown in the settings UI.
func (t Timeframe) Description() string {
	switch t {
	case TimeframeNow:
		return "Happening now"
	case TimeframeNextHours:
		return "Events opening in the next hour"
	case TimeframeToday:
		return "Today's events"
	case TimeframeThisWeek:
		return "This week's events"
	case TimeframeNextWeek:
		return "Next week's events"
	default:
		return "Today's events"
	}
}
