// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ffxiv-rp-calendar/rpcal/internal/config"
)

func clientFor(baseURL string) *Client {
	cfg := &config.Config{
		API: config.APIConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
	}
	return NewClient(cfg)
}

func TestFetchEventsSortsByStartTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Events/GetWeekTranslatableEvents" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"eventName": "Later", "startTimeUTC": "2026-08-29T20:00:00", "endTimeUTC": "2026-08-29T22:00:00"},
			{"eventName": "Earlier", "startTimeUTC": "2026-08-29T18:00:00", "endTimeUTC": "2026-08-29T19:00:00"}
		]`))
	}))
	defer server.Close()

	events, err := clientFor(server.URL).FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("FetchEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].EventName != "Earlier" || events[1].EventName != "Later" {
		t.Errorf("events not sorted by start time: %s, %s", events[0].EventName, events[1].EventName)
	}
	want := time.Date(2026, 8, 29, 18, 0, 0, 0, time.UTC)
	if !events[0].StartTimeUTC.Equal(want) {
		t.Errorf("zoneless timestamp parsed as %v, want %v UTC", events[0].StartTimeUTC.Time, want)
	}
}

func TestFetchEventsNullPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer server.Close()

	events, err := clientFor(server.URL).FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("FetchEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events from null payload, want 0", len(events))
	}
}

func TestFetchEventsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := clientFor(server.URL).FetchEvents(context.Background())
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error %q does not carry the status code", err)
	}
	if !strings.Contains(err.Error(), server.URL) {
		t.Errorf("error %q does not carry the attempted URL", err)
	}
}

func TestFetchEventsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	if _, err := clientFor(server.URL).FetchEvents(context.Background()); err == nil {
		t.Fatal("expected decode error for malformed body")
	}
}

func TestFetchEventsSanitizesBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	// A NUL byte smuggled into the configured URL must not reach the wire.
	client := clientFor(server.URL + "\x00")
	if _, err := client.FetchEvents(context.Background()); err != nil {
		t.Fatalf("FetchEvents with dirty base URL: %v", err)
	}
}

func TestFetchCategoriesAndRatings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Calendar/Categories":
			_, _ = w.Write([]byte(`[{"categoryName": "Bar/Tavern", "sortOrder": 1}]`))
		case "/Calendar/Ratings":
			_, _ = w.Write([]byte(`[{"ratingName": "Adult", "requiresAgeValidation": true}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := clientFor(server.URL)

	categories, err := client.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories: %v", err)
	}
	if len(categories) != 1 || categories[0].CategoryName != "Bar/Tavern" {
		t.Errorf("categories = %v", categories)
	}

	ratings, err := client.FetchRatings(context.Background())
	if err != nil {
		t.Fatalf("FetchRatings: %v", err)
	}
	if len(ratings) != 1 || !ratings[0].RequiresAgeValidation {
		t.Errorf("ratings = %v", ratings)
	}
}
