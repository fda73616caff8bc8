// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ffxiv-rp-calendar/rpcal/internal/events"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

type fakeSource struct {
	mu        sync.Mutex
	filtered  events.FilteredEvents
	lastErr   string
	refreshed int
	snapshot  int
	refreshAt time.Time
	haveTime  bool
}

func (f *fakeSource) Filtered() events.FilteredEvents {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filtered
}

func (f *fakeSource) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *fakeSource) LastRefresh() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshAt, f.haveTime
}

func (f *fakeSource) SnapshotSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeSource) RefreshEvents(forceRefresh bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if forceRefresh {
		f.refreshed++
	}
}

type fakeRefData struct {
	err error
}

func (f fakeRefData) CategoriesBlocking(ctx context.Context) ([]models.EventCategoryInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.EventCategoryInfo{{CategoryName: "Bar/Tavern"}}, nil
}

func (f fakeRefData) RatingsBlocking(ctx context.Context) ([]models.ESRBRatingInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.ESRBRatingInfo{{RatingName: "Teen"}}, nil
}

func testServer(t *testing.T, source *fakeSource, refs ReferenceData) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewRouter(NewHandler(source, refs)).Setup())
	t.Cleanup(server.Close)
	return server
}

func getEnvelope(t *testing.T, url string) (int, models.APIResponse) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode, envelope
}

func TestHealthEndpoint(t *testing.T) {
	source := &fakeSource{snapshot: 4, refreshAt: time.Now().UTC(), haveTime: true}
	server := testServer(t, source, fakeRefData{})

	status, envelope := getEnvelope(t, server.URL+"/api/v1/health")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %q", envelope.Status)
	}

	data, ok := envelope.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %T", envelope.Data)
	}
	if data["status"] != "ok" {
		t.Errorf("health status = %v", data["status"])
	}
	if data["cachedEvents"] != float64(4) {
		t.Errorf("cachedEvents = %v", data["cachedEvents"])
	}
}

func TestHealthDegradedOnFetchError(t *testing.T) {
	source := &fakeSource{lastErr: "connection refused"}
	server := testServer(t, source, fakeRefData{})

	_, envelope := getEnvelope(t, server.URL+"/api/v1/health")
	data := envelope.Data.(map[string]any)
	if data["status"] != "degraded" {
		t.Errorf("health status = %v, want degraded", data["status"])
	}
	if data["lastError"] != "connection refused" {
		t.Errorf("lastError = %v", data["lastError"])
	}
}

func TestEventsEndpoint(t *testing.T) {
	source := &fakeSource{filtered: events.FilteredEvents{
		All: []models.Event{{EventName: "Tavern Night"}, {EventName: "Grand Ball"}},
	}}
	server := testServer(t, source, fakeRefData{})

	status, envelope := getEnvelope(t, server.URL+"/api/v1/events")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if envelope.Metadata.Count != 2 {
		t.Errorf("count = %d, want 2", envelope.Metadata.Count)
	}
}

func TestEventsScopeEndpoint(t *testing.T) {
	source := &fakeSource{filtered: events.FilteredEvents{
		Server:     events.Partition{Available: true, Events: []models.Event{{EventName: "Local Night"}}},
		Datacenter: events.Partition{},
	}}
	server := testServer(t, source, fakeRefData{})

	status, envelope := getEnvelope(t, server.URL+"/api/v1/events/server")
	if status != http.StatusOK || envelope.Metadata.Count != 1 {
		t.Errorf("server scope: status=%d count=%d", status, envelope.Metadata.Count)
	}

	status, envelope = getEnvelope(t, server.URL+"/api/v1/events/datacenter")
	if status != http.StatusConflict {
		t.Errorf("unavailable partition: status = %d, want 409", status)
	}
	if envelope.Error == nil || envelope.Error.Code != "partition_unavailable" {
		t.Errorf("error = %+v", envelope.Error)
	}

	status, _ = getEnvelope(t, server.URL+"/api/v1/events/galaxy")
	if status != http.StatusNotFound {
		t.Errorf("unknown scope: status = %d, want 404", status)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	server := testServer(t, &fakeSource{}, fakeRefData{})

	status, envelope := getEnvelope(t, server.URL+"/api/v1/categories")
	if status != http.StatusOK || envelope.Metadata.Count != 1 {
		t.Errorf("categories: status=%d count=%d", status, envelope.Metadata.Count)
	}

	status, envelope = getEnvelope(t, server.URL+"/api/v1/ratings")
	if status != http.StatusOK || envelope.Metadata.Count != 1 {
		t.Errorf("ratings: status=%d count=%d", status, envelope.Metadata.Count)
	}
}

func TestReferenceEndpointUpstreamFailure(t *testing.T) {
	server := testServer(t, &fakeSource{}, fakeRefData{err: errors.New("api down")})

	status, envelope := getEnvelope(t, server.URL+"/api/v1/categories")
	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", status)
	}
	if envelope.Error == nil || envelope.Error.Code != "upstream_error" {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	source := &fakeSource{}
	server := testServer(t, source, fakeRefData{})

	resp, err := http.Post(server.URL+"/api/v1/refresh", "application/json", nil)
	if err != nil {
		t.Fatalf("POST refresh: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want 202", resp.StatusCode)
	}

	source.mu.Lock()
	forced := source.refreshed
	source.mu.Unlock()
	if forced != 1 {
		t.Errorf("forced refreshes = %d, want 1", forced)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := testServer(t, &fakeSource{}, fakeRefData{})

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
