// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package config holds the plugin configuration and its Koanf v2 loader.
//
// Configuration is layered (highest priority wins): environment variables,
// then an optional YAML config file, then built-in defaults. The display
// section is the subset the filter engine reads and, for the allow-lists,
// mutates: the self-healing default-to-all-selected repair is a deliberate
// persisted side effect, written back through the host's save hook.
package config

import (
	"sync"
	"time"

	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// DefaultAPIAddress is the public calendar API endpoint.
const DefaultAPIAddress = "https://api.ffxiv-rp.org/api"

// DefaultRefreshInterval is the cache staleness threshold. Earlier plugin
// revisions used 30 minutes; the current one uses 15. Tunable via
// refresh.interval.
const DefaultRefreshInterval = 15 * time.Minute

// Config is the root configuration object.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Display DisplayConfig `koanf:"display"`
	Refresh RefreshConfig `koanf:"refresh"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`

	// path is the file this config was loaded from, used by Save.
	path string

	// loc is the parsed display timezone, cached by Validate.
	locMu sync.RWMutex
	loc   *time.Location
}

// APIConfig describes the remote calendar API.
type APIConfig struct {
	// BaseURL is sanitized (trimmed, NUL bytes stripped) before every use.
	BaseURL string        `koanf:"base_url" validate:"required"`
	Timeout time.Duration `koanf:"timeout"`
}

// DisplayConfig is the player-facing filter configuration.
type DisplayConfig struct {
	// Timezone is an IANA zone name used for local time translation and
	// for resolving the start and end of "today".
	Timezone string `koanf:"timezone" validate:"required"`

	// Timeframe selects the display window: now, next_hours, today,
	// this_week, or next_week.
	Timeframe string `koanf:"timeframe"`

	// Categories and Ratings restrict the event lists. An unrestricted
	// list shows everything; an explicit empty set is repaired to
	// all-selected once reference data is available.
	Categories models.AllowList `koanf:"categories"`
	Ratings    models.AllowList `koanf:"ratings"`

	// OneTimeOnly hides recurring events when set.
	OneTimeOnly bool `koanf:"one_time_only"`

	// World is the harness stand-in for the player's current world. The
	// in-game plugin resolves this from client state instead.
	World string `koanf:"world"`
}

// RefreshConfig tunes the cache refresh controller.
type RefreshConfig struct {
	// Interval is the staleness threshold for the event cache.
	Interval time.Duration `koanf:"interval"`

	// PollInterval is how often the harness poll loop drives the
	// controller, standing in for the render loop's once-per-frame call.
	PollInterval time.Duration `koanf:"poll_interval"`
}

// ServerConfig describes the local debug/inspection HTTP server.
type ServerConfig struct {
	Enabled bool   `koanf:"enabled"`
	Host    string `koanf:"host"`
	Port    int    `koanf:"port" validate:"gte=0,lte=65535"`
}

// LoggingConfig mirrors internal/logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns the built-in defaults, matching the plugin's
// shipped behavior: Teen-rated events only, all categories, today's events,
// 15-minute cache staleness.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultAPIAddress,
			Timeout: 30 * time.Second,
		},
		Display: DisplayConfig{
			Timezone:    "UTC",
			Timeframe:   models.TimeframeToday.String(),
			Categories:  models.AllowAll(),
			Ratings:     models.AllowOnly("Teen"),
			OneTimeOnly: false,
			World:       "",
		},
		Refresh: RefreshConfig{
			Interval:     DefaultRefreshInterval,
			PollInterval: time.Second,
		},
		Server: ServerConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    8399,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Path returns the config file this configuration was loaded from, or an
// empty string if only defaults and environment variables applied.
func (c *Config) Path() string {
	return c.path
}

// Timeframe returns the parsed display timeframe. Unrecognized values fall
// back to today, matching the filter engine's window fallback.
func (c *Config) Timeframe() models.Timeframe {
	tf, _ := models.ParseTimeframe(c.Display.Timeframe)
	return tf
}

// Location returns the parsed display timezone. Validate must have run;
// before that, UTC is returned.
func (c *Config) Location() *time.Location {
	c.locMu.RLock()
	defer c.locMu.RUnlock()
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c *Config) setLocation(loc *time.Location) {
	c.locMu.Lock()
	defer c.locMu.Unlock()
	c.loc = loc
}
