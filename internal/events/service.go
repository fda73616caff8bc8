// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ffxiv-rp-calendar/rpcal/internal/calendar"
	"github.com/ffxiv-rp-calendar/rpcal/internal/config"
	"github.com/ffxiv-rp-calendar/rpcal/internal/host"
	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
	"github.com/ffxiv-rp-calendar/rpcal/internal/metrics"
	"github.com/ffxiv-rp-calendar/rpcal/internal/models"
)

// ReferenceSource is the non-blocking reference data surface the filter
// pipeline reads. Implemented by *calendar.ReferenceCache.
type ReferenceSource interface {
	Prime(ctx context.Context)
	Categories() ([]models.EventCategoryInfo, bool)
	Ratings() ([]models.ESRBRatingInfo, bool)
}

// fetchResult is one completed fetch attempt, delivered from the fetch
// goroutine to the next RefreshEvents call.
type fetchResult struct {
	fetchID string
	events  []models.Event
	err     error
}

// Options wires a Service to its collaborators.
type Options struct {
	Config     *config.Config
	Fetcher    calendar.EventFetcher
	References ReferenceSource
	Worlds     WorldLookup
	Player     host.PlayerState
	Notifier   host.WorldChangeNotifier
	ErrorSink  host.ErrorSink
	Saver      host.ConfigSaver

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Service owns the event cache and orchestrates refresh versus re-filter.
//
// The GUI render loop drives RefreshEvents once per tick. The network
// fetch runs in its own goroutine and never blocks the caller; its result
// comes back over a buffered channel and is applied on the next tick by
// the single writer. A snapshot is replaced whole or not at all: a failed
// fetch leaves the previous snapshot and its display timestamp untouched.
//
// An in-flight guard keeps reentrant RefreshEvents calls from launching
// overlapping fetches, which also serializes snapshot generations: a late
// completion can never overwrite a newer one.
type Service struct {
	cfg      *config.Config
	fetcher  calendar.EventFetcher
	refs     ReferenceSource
	worlds   WorldLookup
	player   host.PlayerState
	sink     host.ErrorSink
	saver    host.ConfigSaver
	now      func() time.Time
	unsub    func()
	forceCap *rate.Limiter

	mu             sync.Mutex
	results        chan fetchResult
	snapshot       []models.Event
	filtered       FilteredEvents
	attempted      bool
	inFlight       bool
	lastAttempt    time.Time
	lastSuccess    time.Time
	haveSnapshot   bool
	lastError      string
	lastWorldID    uint32
	lastWorldKnown bool
	worldSeen      bool
	worldNotified  bool
}

// NewService creates the refresh controller and subscribes it to world
// change notifications. Call Close when the owning lifetime ends.
func NewService(opts Options) *Service {
	s := &Service{
		cfg:     opts.Config,
		fetcher: opts.Fetcher,
		refs:    opts.References,
		worlds:  opts.Worlds,
		player:  opts.Player,
		sink:    opts.ErrorSink,
		saver:   opts.Saver,
		now:     opts.Now,
		results: make(chan fetchResult, 1),
		// Forced refreshes bypass the staleness check, so cap them to
		// one fetch per 10s (burst 2) to keep a refresh button or
		// chat command from hammering the API.
		forceCap: rate.NewLimiter(rate.Every(10*time.Second), 2),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Notifier != nil {
		s.unsub = opts.Notifier.Subscribe(s.onWorldChanged)
	}
	if s.refs != nil {
		s.refs.Prime(context.Background())
	}
	return s
}

// Close detaches the service from the world change notification.
func (s *Service) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// onWorldChanged marks the partitions dirty; the next RefreshEvents call
// re-runs the filter pipeline.
func (s *Service) onWorldChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worldNotified = true
}

// RefreshEvents is the once-per-tick entry point. It applies any completed
// fetch, then either launches a new fetch (cache never loaded, staleness
// threshold passed, or forceRefresh) or, when the cache is still fresh,
// re-filters if the player's world changed since the last pass.
func (s *Service) RefreshEvents(forceRefresh bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyPendingLocked()

	nowUTC := s.now().UTC()
	if s.haveSnapshot {
		metrics.SnapshotAgeSeconds.Set(nowUTC.Sub(s.lastSuccess).Seconds())
	}

	stale := !s.attempted || nowUTC.Sub(s.lastAttempt) >= s.cfg.Refresh.Interval
	if forceRefresh && !stale && !s.forceCap.Allow() {
		logging.Debug().Msg("forced refresh rate-limited; treating as normal tick")
		forceRefresh = false
	}

	if (stale || forceRefresh) && !s.inFlight {
		s.attempted = true
		s.inFlight = true
		s.lastAttempt = nowUTC
		fetchID := uuid.NewString()
		logging.Debug().Str("fetch_id", fetchID).Bool("forced", forceRefresh).Msg("launching event fetch")
		go s.runFetch(fetchID)
		return
	}

	if s.worldChangedLocked() {
		s.filterLocked()
	}
}

// runFetch performs the network fetch off the caller's goroutine. The
// result channel is buffered and the in-flight guard ensures at most one
// outstanding fetch, so the send never blocks.
func (s *Service) runFetch(fetchID string) {
	events, err := s.fetcher.FetchEvents(context.Background())
	s.results <- fetchResult{fetchID: fetchID, events: events, err: err}
}

// applyPendingLocked consumes a completed fetch, if any. Success swaps in
// the new snapshot and re-filters; failure records the error for display,
// reports it to the host error channel, and leaves the snapshot and its
// display timestamp untouched.
func (s *Service) applyPendingLocked() {
	select {
	case res := <-s.results:
		s.inFlight = false
		if res.err != nil {
			s.lastError = res.err.Error()
			if s.sink != nil {
				s.sink.PrintError("error fetching events: " + res.err.Error())
			}
			return
		}
		if res.events == nil {
			res.events = []models.Event{}
		}
		s.snapshot = res.events
		s.haveSnapshot = true
		s.lastSuccess = s.now().UTC()
		s.lastError = ""
		metrics.CachedEvents.Set(float64(len(s.snapshot)))
		logging.Info().Str("fetch_id", res.fetchID).Int("events", len(s.snapshot)).Msg("event cache refreshed")
		s.filterLocked()
	default:
	}
}

// worldChangedLocked reports whether the player's world differs from the
// one used for the last filter pass, or a change notification arrived.
func (s *Service) worldChangedLocked() bool {
	worldID, known := s.player.CurrentWorldID()
	changed := s.worldNotified || !s.worldSeen || known != s.lastWorldKnown || worldID != s.lastWorldID
	s.worldNotified = false
	s.worldSeen = true
	s.lastWorldID = worldID
	s.lastWorldKnown = known
	return changed && s.haveSnapshot
}

// filterLocked runs the filter pipeline over the current snapshot and
// publishes the result. Allow-list self-healing mutates the configuration,
// so a changed config triggers the host save hook.
func (s *Service) filterLocked() {
	start := time.Now()

	var categories []models.EventCategoryInfo
	var ratings []models.ESRBRatingInfo
	if s.refs != nil {
		categories, _ = s.refs.Categories()
		ratings, _ = s.refs.Ratings()
	}

	worldID, known := s.player.CurrentWorldID()
	s.worldSeen = true
	s.lastWorldID = worldID
	s.lastWorldKnown = known

	out := Filter(FilterInput{
		Events:     s.snapshot,
		Display:    &s.cfg.Display,
		Location:   s.cfg.Location(),
		NowUTC:     s.now().UTC(),
		WorldID:    worldID,
		WorldKnown: known,
		Worlds:     s.worlds,
		Categories: categories,
		Ratings:    ratings,
	})
	s.filtered = out.Result

	if out.ConfigChanged && s.saver != nil {
		s.saver.Save()
	}

	metrics.FilterDuration.Observe(time.Since(start).Seconds())
	metrics.FilteredEvents.WithLabelValues("flat").Set(float64(len(out.Result.All)))
	metrics.FilteredEvents.WithLabelValues("server").Set(float64(len(out.Result.Server.Events)))
	metrics.FilteredEvents.WithLabelValues("datacenter").Set(float64(len(out.Result.Datacenter.Events)))
	metrics.FilteredEvents.WithLabelValues("region").Set(float64(len(out.Result.Region.Events)))
}

// FilterNow re-runs the filter pipeline immediately against the current
// snapshot, for configuration changes that should not wait for a tick.
func (s *Service) FilterNow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterLocked()
}

// Filtered returns the most recent filter result.
func (s *Service) Filtered() FilteredEvents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filtered
}

// LastError returns the message from the most recent failed fetch, or an
// empty string after a success.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// LastRefresh returns the UTC completion time of the last successful
// fetch; ok is false before the first success.
func (s *Service) LastRefresh() (t time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSuccess, s.haveSnapshot
}

// LastRefreshLocalTime is LastRefresh translated into the display
// timezone, for the GUI's "last updated" caption.
func (s *Service) LastRefreshLocalTime() (t time.Time, ok bool) {
	utc, ok := s.LastRefresh()
	if !ok {
		return time.Time{}, false
	}
	return utc.In(s.cfg.Location()), true
}

// SnapshotSize returns the number of events in the current cache snapshot.
func (s *Service) SnapshotSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshot)
}
