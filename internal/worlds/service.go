// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package worlds resolves world/datacenter/region membership for the
// partitioned event views. The lookup tables come from a host-supplied
// provider (game data inside the real plugin, a bundled snapshot in the
// harness), are built lazily once, and are cached for the process lifetime.
// A missing provider degrades every lookup to an empty result instead of
// failing; partitions then report as unavailable rather than empty.
package worlds

import (
	"sort"
	"sync"

	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// Provider supplies the static world and datacenter tables.
type Provider interface {
	Worlds() ([]models.World, error)
	Datacenters() ([]models.Datacenter, error)
}

// Service answers world/datacenter/region membership queries.
//
// Thread safety: the tables are built exactly once under sync.Once and are
// read-only afterwards, so all methods are safe for concurrent use.
type Service struct {
	provider Provider

	once        sync.Once
	worlds      map[uint32]models.World
	datacenters map[uint32]models.Datacenter
}

// NewService creates a lookup service over the given provider. The tables
// are not built until first use.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) load() {
	s.once.Do(func() {
		s.worlds = make(map[uint32]models.World)
		s.datacenters = make(map[uint32]models.Datacenter)

		if s.provider == nil {
			logging.Warn().Msg("no world table provider; partitioned views will be unavailable")
			return
		}

		worldRows, err := s.provider.Worlds()
		if err != nil {
			logging.Err(err).Msg("failed to load world table")
			return
		}
		dcRows, err := s.provider.Datacenters()
		if err != nil {
			logging.Err(err).Msg("failed to load datacenter table")
			return
		}

		for _, w := range worldRows {
			s.worlds[w.ID] = w
		}
		for _, dc := range dcRows {
			s.datacenters[dc.ID] = dc
		}
		logging.Debug().Int("worlds", len(s.worlds)).Int("datacenters", len(s.datacenters)).Msg("world tables loaded")
	})
}

// World returns the world row for the given id.
func (s *Service) World(id uint32) (models.World, bool) {
	s.load()
	w, ok := s.worlds[id]
	return w, ok
}

// Datacenter returns the datacenter row for the given id.
func (s *Service) Datacenter(id uint32) (models.Datacenter, bool) {
	s.load()
	dc, ok := s.datacenters[id]
	return dc, ok
}

// WorldByName resolves a world by its display name.
func (s *Service) WorldByName(name string) (models.World, bool) {
	s.load()
	for _, w := range s.worlds {
		if w.Name == name {
			return w, true
		}
	}
	return models.World{}, false
}

// PublicWorlds returns all public worlds, sorted by name for stable display.
func (s *Service) PublicWorlds() []models.World {
	s.load()
	out := make([]models.World, 0, len(s.worlds))
	for _, w := range s.worlds {
		if w.Public {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DatacenterWorldIDs returns the ids of every world in the datacenter,
// ascending. Unknown datacenters yield an empty slice.
func (s *Service) DatacenterWorldIDs(datacenterID uint32) []uint32 {
	s.load()
	ids := make([]uint32, 0, 8)
	for id, w := range s.worlds {
		if w.DatacenterID == datacenterID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RegionDatacenterIDs returns the ids of every datacenter in the region,
// ascending.
func (s *Service) RegionDatacenterIDs(region models.Region) []uint32 {
	s.load()
	ids := make([]uint32, 0, 4)
	for id, dc := range s.datacenters {
		if dc.Region == region {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RegionWorldIDs returns the ids of every world across all datacenters in
// the region, ascending.
func (s *Service) RegionWorldIDs(region models.Region) []uint32 {
	s.load()
	inRegion := make(map[uint32]bool)
	for _, dcID := range s.RegionDatacenterIDs(region) {
		inRegion[dcID] = true
	}
	ids := make([]uint32, 0, 32)
	for id, w := range s.worlds {
		if inRegion[w.DatacenterID] {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
