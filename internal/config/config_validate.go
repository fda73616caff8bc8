// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// validate is the shared validator instance; struct metadata is cached.
var validate = validator.New(validator.WithRequiredStructEnabled())

// SanitizeBaseURL normalizes a configured API address before path
// concatenation: embedded NUL characters become spaces, surrounding
// whitespace and any trailing slash are trimmed. Persisted settings from
// older plugin versions are known to carry stray NUL bytes.
func SanitizeBaseURL(raw string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "\x00", " "))
	return strings.TrimSuffix(cleaned, "/")
}

// Validate checks the configuration and caches derived values (the parsed
// display timezone). It is called by Load and must be called after any
// manual construction.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := validateAPIURL(SanitizeBaseURL(c.API.BaseURL)); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}

	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return fmt.Errorf("display.timezone: unknown IANA zone %q: %w", c.Display.Timezone, err)
	}
	c.setLocation(loc)

	if _, ok := models.ParseTimeframe(c.Display.Timeframe); !ok {
		return fmt.Errorf("display.timeframe: unknown value %q (want now, next_hours, today, this_week, or next_week)", c.Display.Timeframe)
	}

	if c.Refresh.Interval <= 0 {
		return fmt.Errorf("refresh.interval must be positive, got %s", c.Refresh.Interval)
	}
	if c.Refresh.PollInterval <= 0 {
		return fmt.Errorf("refresh.poll_interval must be positive, got %s", c.Refresh.PollInterval)
	}

	return nil
}

// validateAPIURL checks the sanitized API address is a usable base URL.
func validateAPIURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
