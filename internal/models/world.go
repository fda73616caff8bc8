// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package models

// Region is a physical server-hardware grouping containing datacenters.
type Region byte

const (
	// RegionNonPublic covers internal and unreleased datacenters.
	RegionNonPublic Region = 0

	// RegionJapan is the Japanese physical region.
	RegionJapan Region = 1

	// RegionNorthAmerica is the North American physical region.
	RegionNorthAmerica Region = 2

	// RegionEurope is the European physical region.
	RegionEurope Region = 3

	// RegionOceania is the Oceanian physical region.
	RegionOceania Region = 4
)

// String returns the region's display name.
func (r Region) String() string {
	switch r {
	case RegionJapan:
		return "Japan"
	case RegionNorthAmerica:
		return "North America"
	case RegionEurope:
		return "Europe"
	case RegionOceania:
		return "Oceania"
	default:
		return "Non-Public"
	}
}

// World is one addressable game server. Each world belongs to exactly one
// datacenter.
type World struct {
	ID           uint32 `json:"id"`
	Name         string `json:"name"`
	DatacenterID uint32 `json:"datacenterId"`
	Public       bool   `json:"public"`
}

// Datacenter is a logical grouping of worlds within a physical region.
type Datacenter struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	Region Region `json:"region"`
}
