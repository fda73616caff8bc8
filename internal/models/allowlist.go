// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package models

import "slices"

// AllowList is a filter criterion that is either unrestricted or an explicit
// set of permitted names. The tagged form avoids the ambiguity between
// "empty because nothing selected" and "empty because not yet initialized":
// an explicit empty set is the not-yet-seeded state, repaired by the filter
// engine from reference data the first time it is seen.
type AllowList struct {
	All   bool     `koanf:"all" json:"all"`
	Names []string `koanf:"names" json:"names"`
}

// AllowAll returns an unrestricted allow-list.
func AllowAll() AllowList {
	return AllowList{All: true}
}

// AllowOnly returns an allow-list restricted to the given names.
func AllowOnly(names ...string) AllowList {
	return AllowList{Names: names}
}

// Allows reports whether the name passes the filter.
func (l AllowList) Allows(name string) bool {
	return l.All || slices.Contains(l.Names, name)
}

// NeedsSeed reports whether the list is an explicit empty set awaiting its
// default-to-all-selected repair from reference data.
func (l AllowList) NeedsSeed() bool {
	return !l.All && len(l.Names) == 0
}
