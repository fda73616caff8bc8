// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/ffxiv-rp-calendar/rpcal/internal/events"
	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// EventSource is the slice of the refresh controller the handlers read.
type EventSource interface {
	Filtered() events.FilteredEvents
	LastError() string
	LastRefresh() (time.Time, bool)
	SnapshotSize() int
	RefreshEvents(forceRefresh bool)
}

// ReferenceData serves the category and rating reference lists, fetching
// them on first use.
type ReferenceData interface {
	CategoriesBlocking(ctx context.Context) ([]models.EventCategoryInfo, error)
	RatingsBlocking(ctx context.Context) ([]models.ESRBRatingInfo, error)
}

// Handler implements the debug-server endpoints.
type Handler struct {
	source EventSource
	refs   ReferenceData
}

// NewHandler creates a Handler over the refresh controller and reference
// cache.
func NewHandler(source EventSource, refs ReferenceData) *Handler {
	return &Handler{source: source, refs: refs}
}

// healthPayload is the body of a health response.
type healthPayload struct {
	Status       string     `json:"status"`
	CachedEvents int        `json:"cachedEvents"`
	LastRefresh  *time.Time `json:"lastRefresh,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
}

// Health reports cache state. The endpoint stays 200 even when the last
// fetch failed; the body carries the error so dashboards can show it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	payload := healthPayload{
		Status:       "ok",
		CachedEvents: h.source.SnapshotSize(),
		LastError:    h.source.LastError(),
	}
	if t, ok := h.source.LastRefresh(); ok {
		payload.LastRefresh = &t
	}
	if payload.LastError != "" {
		payload.Status = "degraded"
	}
	respondJSON(w, http.StatusOK, payload, 0)
}

// Events returns the flat filtered event list.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	filtered := h.source.Filtered()
	respondJSON(w, http.StatusOK, filtered.All, len(filtered.All))
}

// EventsScope returns one location partition: server, datacenter, or
// region. An unavailable partition is reported as 409 rather than an
// empty list so callers can tell "no events" from "no player world".
func (h *Handler) EventsScope(w http.ResponseWriter, r *http.Request) {
	filtered := h.source.Filtered()

	var part events.Partition
	switch scope := chi.URLParam(r, "scope"); scope {
	case "server":
		part = filtered.Server
	case "datacenter":
		part = filtered.Datacenter
	case "region":
		part = filtered.Region
	default:
		respondError(w, http.StatusNotFound, "unknown_scope", "scope must be server, datacenter, or region")
		return
	}

	if !part.Available {
		respondError(w, http.StatusConflict, "partition_unavailable", "player world not resolved")
		return
	}
	respondJSON(w, http.StatusOK, part.Events, len(part.Events))
}

// Categories returns the category reference list.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.refs.CategoriesBlocking(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, categories, len(categories))
}

// Ratings returns the rating reference list.
func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.refs.RatingsBlocking(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "upstream_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, ratings, len(ratings))
}

// Refresh forces a cache refresh on the next tick. The fetch itself is
// asynchronous, so this returns 202 immediately.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.source.RefreshEvents(true)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "refresh requested"}, 0)
}

func respondJSON(w http.ResponseWriter, status int, data any, count int) {
	resp := models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			Count:     count,
		},
	}
	writeJSON(w, status, resp)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	resp := models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{Code: code, Message: message},
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Err(err).Msg("failed to encode response")
	}
}
