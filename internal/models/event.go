// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package models defines the wire and domain types shared across RPCal:
// roleplay events, category and rating reference rows, timeframe selectors,
// allow-lists, and the world/datacenter/region tables.
package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// eventTimeLayouts are the accepted timestamp formats. The calendar API emits
// zoneless UTC timestamps; RFC 3339 is accepted for forward compatibility.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
}

// EventTime is a UTC timestamp that unmarshals from either RFC 3339 or the
// calendar API's zoneless format. Zoneless values are interpreted as UTC.
type EventTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *EventTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range eventTimeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

// MarshalJSON implements json.Marshaler, emitting RFC 3339 UTC.
func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// Event is one roleplay gathering as served by the calendar API.
//
// The upstream data carries no stable unique identifier; a whole generation
// of events is replaced atomically on every successful cache refresh.
// LocalStartTime and LocalEndTime are derived by the filter engine from the
// configured display timezone and are not part of the wire payload.
type Event struct {
	Datacenter    string     `json:"datacenter"`
	Server        string     `json:"server"`
	ServerID      uint32     `json:"serverId"`
	UID           string     `json:"uid"`
	EventName     string     `json:"eventName"`
	Location      string     `json:"location"`
	EventURL      string     `json:"eventURL"`
	ESRBRating    string     `json:"esrbRating"`
	Description   string     `json:"description"`
	EventCategory string     `json:"eventCategory"`
	Contacts      string     `json:"contacts"`
	StartTimeUTC  EventTime  `json:"startTimeUTC"`
	EndTimeUTC    EventTime  `json:"endTimeUTC"`
	IsRecurring   bool       `json:"isRecurring"`
	LastValidated *EventTime `json:"lastValidated,omitempty"`

	LocalStartTime time.Time `json:"localStartTime"`
	LocalEndTime   time.Time `json:"localEndTime"`
}
