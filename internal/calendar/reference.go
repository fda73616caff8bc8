// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package calendar

import (
	"context"
	"sync"

	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// ReferenceClient is the slice of Client the reference cache needs.
type ReferenceClient interface {
	FetchCategories(ctx context.Context) ([]models.EventCategoryInfo, error)
	FetchRatings(ctx context.Context) ([]models.ESRBRatingInfo, error)
}

// ReferenceCache holds the category and rating reference lists. Each list
// is fetched at most once per process lifetime and kept forever; a failed
// fetch is retried on the next request rather than cached.
//
// The non-blocking accessors never touch the network themselves; they
// return whatever has already arrived, so the filter engine can run on
// every render tick without stalling. Prime starts the background loads.
type ReferenceCache struct {
	client ReferenceClient

	mu          sync.Mutex
	categories  []models.EventCategoryInfo
	ratings     []models.ESRBRatingInfo
	catLoaded   bool
	ratLoaded   bool
	catFetching bool
	ratFetching bool
}

// NewReferenceCache creates an empty reference cache over the client.
func NewReferenceCache(client ReferenceClient) *ReferenceCache {
	return &ReferenceCache{client: client}
}

// Prime starts background fetches for both lists if they have not loaded
// yet. Safe to call repeatedly; at most one fetch per list is in flight.
func (r *ReferenceCache) Prime(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.catLoaded && !r.catFetching {
		r.catFetching = true
		go r.loadCategories(ctx)
	}
	if !r.ratLoaded && !r.ratFetching {
		r.ratFetching = true
		go r.loadRatings(ctx)
	}
}

func (r *ReferenceCache) loadCategories(ctx context.Context) {
	categories, err := r.client.FetchCategories(ctx)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catFetching = false
	if err != nil {
		logging.Err(err).Msg("category reference fetch failed")
		return
	}
	r.categories = categories
	r.catLoaded = true
}

func (r *ReferenceCache) loadRatings(ctx context.Context) {
	ratings, err := r.client.FetchRatings(ctx)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratFetching = false
	if err != nil {
		logging.Err(err).Msg("rating reference fetch failed")
		return
	}
	r.ratings = ratings
	r.ratLoaded = true
}

// Categories returns the cached category list. The second return is false
// until the list has loaded.
func (r *ReferenceCache) Categories() ([]models.EventCategoryInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categories, r.catLoaded
}

// Ratings returns the cached rating list. The second return is false until
// the list has loaded.
func (r *ReferenceCache) Ratings() ([]models.ESRBRatingInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ratings, r.ratLoaded
}

// CategoriesBlocking returns the category list, fetching it synchronously
// if it has not loaded yet. Used by the debug server, where a stall is
// acceptable.
func (r *ReferenceCache) CategoriesBlocking(ctx context.Context) ([]models.EventCategoryInfo, error) {
	if categories, ok := r.Categories(); ok {
		return categories, nil
	}
	categories, err := r.client.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.catLoaded {
		r.categories = categories
		r.catLoaded = true
	}
	return r.categories, nil
}

// RatingsBlocking returns the rating list, fetching it synchronously if it
// has not loaded yet.
func (r *ReferenceCache) RatingsBlocking(ctx context.Context) ([]models.ESRBRatingInfo, error) {
	if ratings, ok := r.Ratings(); ok {
		return ratings, nil
	}
	ratings, err := r.client.FetchRatings(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ratLoaded {
		r.ratings = ratings
		r.ratLoaded = true
	}
	return r.ratings, nil
}
