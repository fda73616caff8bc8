// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package calendar talks to the remote roleplay event calendar API: the
// weekly event list plus the category and rating reference lists. One
// fetch is one GET with no retries; retry policy belongs to the refresh
// controller's next scheduled attempt, and the circuit breaker wrapper
// guards against hammering a failing endpoint.
package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ffxiv-rp-calendar/rpcal/internal/config"
	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/metrics"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// API paths, relative to the sanitized base URL.
const (
	eventsPath     = "/Events/GetWeekTranslatableEvents"
	categoriesPath = "/Calendar/Categories"
	ratingsPath    = "/Calendar/Ratings"
)

// maxErrorBodySize caps how much of a failed response body is read for
// error reporting.
const maxErrorBodySize = 16 * 1024

// Client is the calendar API HTTP client.
//
// The base URL is read from configuration on every call so settings
// changes take effect without a restart, matching the plugin's behavior.
//
// Thread safety: safe for concurrent use; each call builds its own request.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

// NewClient creates a calendar API client using the configured timeout.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// FetchEvents retrieves the current week's event list, sorted ascending by
// start time. A syntactically valid but empty or null payload is zero
// events, not an error. Errors carry the attempted URL.
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	fetchID := uuid.NewString()
	start := time.Now()

	var events []models.Event
	err := c.getJSON(ctx, eventsPath, &events)
	metrics.EventFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EventFetchesTotal.WithLabelValues("failure").Inc()
		logging.Err(err).Str("fetch_id", fetchID).Msg("event fetch failed")
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTimeUTC.Before(events[j].StartTimeUTC.Time)
	})

	metrics.EventFetchesTotal.WithLabelValues("success").Inc()
	logging.Debug().Str("fetch_id", fetchID).Int("events", len(events)).Dur("elapsed", time.Since(start)).Msg("event fetch complete")
	return events, nil
}

// FetchCategories retrieves the event category reference list.
func (c *Client) FetchCategories(ctx context.Context) ([]models.EventCategoryInfo, error) {
	var categories []models.EventCategoryInfo
	if err := c.getJSON(ctx, categoriesPath, &categories); err != nil {
		metrics.ReferenceFetchesTotal.WithLabelValues("categories", "failure").Inc()
		return nil, err
	}
	metrics.ReferenceFetchesTotal.WithLabelValues("categories", "success").Inc()
	return categories, nil
}

// FetchRatings retrieves the ESRB rating reference list.
func (c *Client) FetchRatings(ctx context.Context) ([]models.ESRBRatingInfo, error) {
	var ratings []models.ESRBRatingInfo
	if err := c.getJSON(ctx, ratingsPath, &ratings); err != nil {
		metrics.ReferenceFetchesTotal.WithLabelValues("ratings", "failure").Inc()
		return nil, err
	}
	metrics.ReferenceFetchesTotal.WithLabelValues("ratings", "success").Inc()
	return ratings, nil
}

// getJSON performs one GET against the sanitized base URL plus path and
// decodes the JSON response body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	reqURL := config.SanitizeBaseURL(c.cfg.API.BaseURL) + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("URL %s: failed to create request: %w", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("URL %s: request failed: %w", reqURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("URL %s: unexpected status %d: %s", reqURL, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("URL %s: failed to decode response: %w", reqURL, err)
	}
	return nil
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}
