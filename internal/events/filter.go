// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package events

import (
	"time"

	"github.com/ffxiv-rp-calendar/rpcal/internal/config"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// Partition is one location-scoped view of the filtered list. Available is
// false when the player's location could not be resolved, which is distinct
// from an empty view meaning "no matching events here".
type Partition struct {
	Available bool           `json:"available"`
	Events    []models.Event `json:"events"`
}

// FilteredEvents is the output of one filter pass: the flat filtered and
// localized list plus its three nested location partitions. Whenever all
// three partitions are available, Server ⊆ Datacenter ⊆ Region ⊆ All.
type FilteredEvents struct {
	All        []models.Event `json:"all"`
	Server     Partition      `json:"server"`
	Datacenter Partition      `json:"datacenter"`
	Region     Partition      `json:"region"`
}

// WorldLookup is the world/datacenter/region membership surface the filter
// engine needs. Implemented by *worlds.Service.
type WorldLookup interface {
	World(id uint32) (models.World, bool)
	Datacenter(id uint32) (models.Datacenter, bool)
	DatacenterWorldIDs(datacenterID uint32) []uint32
	RegionWorldIDs(region models.Region) []uint32
}

// FilterInput carries one filter pass's inputs.
type FilterInput struct {
	// Events is the cache snapshot, already sorted ascending by start
	// time; filtering preserves that order.
	Events []models.Event

	// Display is the player's filter configuration. Mutated in place
	// when an empty allow-list is repaired; ConfigChanged reports it.
	Display *config.DisplayConfig

	// Location is the display timezone for local time derivation.
	Location *time.Location

	// NowUTC anchors the timeframe window.
	NowUTC time.Time

	// WorldID is the player's current world; WorldKnown is false while
	// the player is unresolved, making every partition unavailable.
	WorldID    uint32
	WorldKnown bool

	// Worlds resolves partition membership. May be nil.
	Worlds WorldLookup

	// Categories and Ratings are the reference lists, nil until their
	// one-time fetch completes. Ratings drive the unconditional
	// age-validation exclusion; both drive allow-list self-healing.
	Categories []models.EventCategoryInfo
	Ratings    []models.ESRBRatingInfo
}

// FilterOutput is one filter pass's result.
type FilterOutput struct {
	Result FilteredEvents

	// ConfigChanged is true when an empty allow-list was repaired; the
	// caller owes the host a Save().
	ConfigChanged bool
}

// Filter runs one pass of the event filter pipeline.
//
// Every event must pass the conjunction of the category, rating,
// recurrence, and time clauses, and before any of those the
// non-configurable exclusion of ratings that require age validation.
// Passing events get their local start/end times derived from the display
// timezone. Identical inputs always produce identical output, membership
// and order alike.
func Filter(in FilterInput) FilterOutput {
	out := FilterOutput{}
	out.ConfigChanged = healAllowLists(in.Display, in.Categories, in.Ratings)

	tf, _ := models.ParseTimeframe(in.Display.Timeframe)
	windowStart, windowEnd := ComputeWindow(tf, in.NowUTC, in.Location)
	nowUTC := in.NowUTC.UTC()

	restricted := make(map[string]bool, len(in.Ratings))
	for _, rating := range in.Ratings {
		if rating.RequiresAgeValidation {
			restricted[rating.RatingName] = true
		}
	}

	flat := make([]models.Event, 0, len(in.Events))
	for _, event := range in.Events {
		if restricted[event.ESRBRating] {
			continue
		}
		if !in.Display.Categories.Allows(event.EventCategory) {
			continue
		}
		if !in.Display.Ratings.Allows(event.ESRBRating) {
			continue
		}
		if in.Display.OneTimeOnly && event.IsRecurring {
			continue
		}
		if !inTimeWindow(tf, event, nowUTC, windowStart, windowEnd) {
			continue
		}

		event.LocalStartTime = event.StartTimeUTC.In(in.Location)
		event.LocalEndTime = event.EndTimeUTC.In(in.Location)
		flat = append(flat, event)
	}

	out.Result = FilteredEvents{
		All:        flat,
		Server:     Partition{Events: []models.Event{}},
		Datacenter: Partition{Events: []models.Event{}},
		Region:     Partition{Events: []models.Event{}},
	}
	partition(&out.Result, flat, in)
	return out
}

// inTimeWindow applies the time clause. Now means "in progress at this
// instant"; every other timeframe means "starts within the window",
// inclusive on both ends.
func inTimeWindow(tf models.Timeframe, event models.Event, nowUTC, windowStart, windowEnd time.Time) bool {
	if tf == models.TimeframeNow {
		return !event.StartTimeUTC.After(nowUTC) && !event.EndTimeUTC.Before(nowUTC)
	}
	return !event.StartTimeUTC.Before(windowStart) && !event.StartTimeUTC.After(windowEnd)
}

// healAllowLists applies the default-to-all-selected repair: an explicit
// empty selection is replaced with the full set of known names the first
// time filtering runs with non-empty reference data.
func healAllowLists(display *config.DisplayConfig, categories []models.EventCategoryInfo, ratings []models.ESRBRatingInfo) bool {
	changed := false
	if display.Categories.NeedsSeed() && len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			if category.CategoryName != "" {
				names = append(names, category.CategoryName)
			}
		}
		display.Categories = models.AllowOnly(names...)
		changed = true
	}
	if display.Ratings.NeedsSeed() && len(ratings) > 0 {
		names := make([]string, 0, len(ratings))
		for _, rating := range ratings {
			if rating.RatingName != "" {
				names = append(names, rating.RatingName)
			}
		}
		display.Ratings = models.AllowOnly(names...)
		changed = true
	}
	return changed
}

// partition fills the three location-scoped views. All three stay
// unavailable unless the player's world resolves through the lookup
// tables; the region view additionally needs the world's datacenter row.
func partition(result *FilteredEvents, flat []models.Event, in FilterInput) {
	if !in.WorldKnown || in.Worlds == nil {
		return
	}
	world, ok := in.Worlds.World(in.WorldID)
	if !ok {
		return
	}

	result.Server = Partition{Available: true, Events: filterByServer(flat, func(id uint32) bool {
		return id == world.ID
	})}

	dcWorlds := toSet(in.Worlds.DatacenterWorldIDs(world.DatacenterID))
	result.Datacenter = Partition{Available: true, Events: filterByServer(flat, func(id uint32) bool {
		return dcWorlds[id]
	})}

	datacenter, ok := in.Worlds.Datacenter(world.DatacenterID)
	if !ok {
		return
	}
	regionWorlds := toSet(in.Worlds.RegionWorldIDs(datacenter.Region))
	result.Region = Partition{Available: true, Events: filterByServer(flat, func(id uint32) bool {
		return regionWorlds[id]
	})}
}

func filterByServer(events []models.Event, match func(uint32) bool) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, event := range events {
		if match(event.ServerID) {
			out = append(out, event)
		}
	}
	return out
}

func toSet(ids []uint32) map[uint32]bool {
	set := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
