// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type countingRefresher struct {
	mu    sync.Mutex
	calls int
}

func (r *countingRefresher) RefreshEvents(forceRefresh bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
}

func (r *countingRefresher) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestRefreshServiceTicksAndStops(t *testing.T) {
	refresher := &countingRefresher{}
	svc := NewRefreshService(refresher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && refresher.count() < 3 {
		time.Sleep(5 * time.Millisecond)
	}
	if got := refresher.count(); got < 3 {
		t.Fatalf("ticks = %d, want at least 3 (immediate + ticker)", got)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

type fakeHTTPServer struct {
	mu        sync.Mutex
	serveErr  error
	release   chan struct{}
	shutdowns int
}

func (s *fakeHTTPServer) ListenAndServe() error {
	if s.release != nil {
		<-s.release
	}
	return s.serveErr
}

func (s *fakeHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdowns++
	s.mu.Unlock()
	if s.release != nil {
		close(s.release)
	}
	return nil
}

func TestHTTPServiceFailureReported(t *testing.T) {
	server := &fakeHTTPServer{serveErr: errors.New("bind: address already in use")}
	svc := NewHTTPService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.serveErr) {
		t.Errorf("Serve returned %v, want wrapped bind failure", err)
	}
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	server := &fakeHTTPServer{release: make(chan struct{})}
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	server.mu.Lock()
	shutdowns := server.shutdowns
	server.mu.Unlock()
	if shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", shutdowns)
	}
}
