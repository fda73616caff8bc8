// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package worlds

import "github.com/ffxiv-rp-calendar/rpcal/internal/models"

// StaticTable is a bundled snapshot of the public world/datacenter layout,
// used by the console harness where no game data source exists. The in-game
// plugin reads live game data instead, so new worlds appear there without a
// release.
type StaticTable struct{}

// Datacenters implements Provider.
func (StaticTable) Datacenters() ([]models.Datacenter, error) {
	return []models.Datacenter{
		{ID: 1, Name: "Elemental", Region: models.RegionJapan},
		{ID: 2, Name: "Gaia", Region: models.RegionJapan},
		{ID: 3, Name: "Mana", Region: models.RegionJapan},
		{ID: 4, Name: "Aether", Region: models.RegionNorthAmerica},
		{ID: 5, Name: "Primal", Region: models.RegionNorthAmerica},
		{ID: 6, Name: "Chaos", Region: models.RegionEurope},
		{ID: 7, Name: "Light", Region: models.RegionEurope},
		{ID: 8, Name: "Crystal", Region: models.RegionNorthAmerica},
		{ID: 9, Name: "Materia", Region: models.RegionOceania},
		{ID: 10, Name: "Meteor", Region: models.RegionJapan},
		{ID: 11, Name: "Dynamis", Region: models.RegionNorthAmerica},
	}, nil
}

// Worlds implements Provider.
func (StaticTable) Worlds() ([]models.World, error) {
	return []models.World{
		// Elemental
		{ID: 90, Name: "Aegis", DatacenterID: 1, Public: true},
		{ID: 68, Name: "Atomos", DatacenterID: 1, Public: true},
		{ID: 45, Name: "Carbuncle", DatacenterID: 1, Public: true},
		{ID: 58, Name: "Garuda", DatacenterID: 1, Public: true},
		{ID: 94, Name: "Gungnir", DatacenterID: 1, Public: true},
		{ID: 49, Name: "Kujata", DatacenterID: 1, Public: true},
		{ID: 72, Name: "Tonberry", DatacenterID: 1, Public: true},
		{ID: 50, Name: "Typhon", DatacenterID: 1, Public: true},
		// Gaia
		{ID: 43, Name: "Alexander", DatacenterID: 2, Public: true},
		{ID: 69, Name: "Bahamut", DatacenterID: 2, Public: true},
		{ID: 92, Name: "Durandal", DatacenterID: 2, Public: true},
		{ID: 46, Name: "Fenrir", DatacenterID: 2, Public: true},
		{ID: 59, Name: "Ifrit", DatacenterID: 2, Public: true},
		{ID: 98, Name: "Ridill", DatacenterID: 2, Public: true},
		{ID: 76, Name: "Tiamat", DatacenterID: 2, Public: true},
		{ID: 51, Name: "Ultima", DatacenterID: 2, Public: true},
		// Mana
		{ID: 44, Name: "Anima", DatacenterID: 3, Public: true},
		{ID: 23, Name: "Asura", DatacenterID: 3, Public: true},
		{ID: 70, Name: "Chocobo", DatacenterID: 3, Public: true},
		{ID: 47, Name: "Hades", DatacenterID: 3, Public: true},
		{ID: 48, Name: "Ixion", DatacenterID: 3, Public: true},
		{ID: 96, Name: "Masamune", DatacenterID: 3, Public: true},
		{ID: 28, Name: "Pandaemonium", DatacenterID: 3, Public: true},
		{ID: 61, Name: "Titan", DatacenterID: 3, Public: true},
		// Meteor
		{ID: 24, Name: "Belias", DatacenterID: 10, Public: true},
		{ID: 82, Name: "Mandragora", DatacenterID: 10, Public: true},
		{ID: 60, Name: "Ramuh", DatacenterID: 10, Public: true},
		{ID: 29, Name: "Shinryu", DatacenterID: 10, Public: true},
		{ID: 30, Name: "Unicorn", DatacenterID: 10, Public: true},
		{ID: 52, Name: "Valefor", DatacenterID: 10, Public: true},
		{ID: 31, Name: "Yojimbo", DatacenterID: 10, Public: true},
		{ID: 32, Name: "Zeromus", DatacenterID: 10, Public: true},
		// Aether
		{ID: 73, Name: "Adamantoise", DatacenterID: 4, Public: true},
		{ID: 79, Name: "Cactuar", DatacenterID: 4, Public: true},
		{ID: 54, Name: "Faerie", DatacenterID: 4, Public: true},
		{ID: 63, Name: "Gilgamesh", DatacenterID: 4, Public: true},
		{ID: 40, Name: "Jenova", DatacenterID: 4, Public: true},
		{ID: 65, Name: "Midgardsormr", DatacenterID: 4, Public: true},
		{ID: 99, Name: "Sargatanas", DatacenterID: 4, Public: true},
		{ID: 57, Name: "Siren", DatacenterID: 4, Public: true},
		// Primal
		{ID: 78, Name: "Behemoth", DatacenterID: 5, Public: true},
		{ID: 93, Name: "Excalibur", DatacenterID: 5, Public: true},
		{ID: 53, Name: "Exodus", DatacenterID: 5, Public: true},
		{ID: 35, Name: "Famfrit", DatacenterID: 5, Public: true},
		{ID: 95, Name: "Hyperion", DatacenterID: 5, Public: true},
		{ID: 55, Name: "Lamia", DatacenterID: 5, Public: true},
		{ID: 64, Name: "Leviathan", DatacenterID: 5, Public: true},
		{ID: 77, Name: "Ultros", DatacenterID: 5, Public: true},
		// Crystal
		{ID: 91, Name: "Balmung", DatacenterID: 8, Public: true},
		{ID: 34, Name: "Brynhildr", DatacenterID: 8, Public: true},
		{ID: 74, Name: "Coeurl", DatacenterID: 8, Public: true},
		{ID: 62, Name: "Diabolos", DatacenterID: 8, Public: true},
		{ID: 81, Name: "Goblin", DatacenterID: 8, Public: true},
		{ID: 75, Name: "Malboro", DatacenterID: 8, Public: true},
		{ID: 37, Name: "Mateus", DatacenterID: 8, Public: true},
		{ID: 41, Name: "Zalera", DatacenterID: 8, Public: true},
		// Dynamis
		{ID: 406, Name: "Halicarnassus", DatacenterID: 11, Public: true},
		{ID: 407, Name: "Maduin", DatacenterID: 11, Public: true},
		{ID: 404, Name: "Marilith", DatacenterID: 11, Public: true},
		{ID: 405, Name: "Seraph", DatacenterID: 11, Public: true},
		// Chaos
		{ID: 80, Name: "Cerberus", DatacenterID: 6, Public: true},
		{ID: 83, Name: "Louisoix", DatacenterID: 6, Public: true},
		{ID: 71, Name: "Moogle", DatacenterID: 6, Public: true},
		{ID: 39, Name: "Omega", DatacenterID: 6, Public: true},
		{ID: 401, Name: "Phantom", DatacenterID: 6, Public: true},
		{ID: 97, Name: "Ragnarok", DatacenterID: 6, Public: true},
		{ID: 400, Name: "Sagittarius", DatacenterID: 6, Public: true},
		{ID: 85, Name: "Spriggan", DatacenterID: 6, Public: true},
		// Light
		{ID: 402, Name: "Alpha", DatacenterID: 7, Public: true},
		{ID: 36, Name: "Lich", DatacenterID: 7, Public: true},
		{ID: 66, Name: "Odin", DatacenterID: 7, Public: true},
		{ID: 56, Name: "Phoenix", DatacenterID: 7, Public: true},
		{ID: 403, Name: "Raiden", DatacenterID: 7, Public: true},
		{ID: 67, Name: "Shiva", DatacenterID: 7, Public: true},
		{ID: 33, Name: "Twintania", DatacenterID: 7, Public: true},
		{ID: 42, Name: "Zodiark", DatacenterID: 7, Public: true},
		// Materia
		{ID: 22, Name: "Bismarck", DatacenterID: 9, Public: true},
		{ID: 21, Name: "Ravana", DatacenterID: 9, Public: true},
		{ID: 86, Name: "Sephirot", DatacenterID: 9, Public: true},
		{ID: 87, Name: "Sophia", DatacenterID: 9, Public: true},
		{ID: 88, Name: "Zurvan", DatacenterID: 9, Public: true},
	}, nil
}
