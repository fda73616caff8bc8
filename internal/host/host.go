// RPCal - FFXIV Roleplay Event Calendar Client Core
// Copyright 2026 FFXIV RP Event Calendar
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ffxiv-rp-calendar/rpcal

// Package host defines the collaborator interfaces the event pipeline
// consumes from its embedding application: player/world state, the world
// change notification, the user-visible error channel, and the settings
// save hook. The real plugin shim implements these against the addon host;
// this package also ships the simple implementations the console harness
// and tests use.
package host

import (
	"sync"

	"github.com/ffxiv-rp-calendar/rpcal/internal/logging"
)

// PlayerState reports the player's current world. The second return is
// false while the player is unresolved (not logged in, between zones).
type PlayerState interface {
	CurrentWorldID() (uint32, bool)
}

// WorldChangeNotifier delivers "player's world changed" signals. Subscribe
// returns a cancel function; the subscriber must call it when its lifetime
// ends so teardown is deterministic.
type WorldChangeNotifier interface {
	Subscribe(fn func()) (cancel func())
}

// ErrorSink receives user-visible failure notices (the chat window in the
// real plugin). Implementations must not block.
type ErrorSink interface {
	PrintError(msg string)
}

// ConfigSaver persists the configuration after a core-initiated mutation.
type ConfigSaver interface {
	Save()
}

// SaverFunc adapts a function to ConfigSaver.
type SaverFunc func()

// Save implements ConfigSaver.
func (f SaverFunc) Save() { f() }

// FixedPlayer is a PlayerState with an assignable world, used by the
// console harness and tests.
type FixedPlayer struct {
	mu      sync.RWMutex
	worldID uint32
	known   bool
}

// NewFixedPlayer creates a resolved player on the given world.
func NewFixedPlayer(worldID uint32) *FixedPlayer {
	return &FixedPlayer{worldID: worldID, known: true}
}

// NewUnresolvedPlayer creates a player whose world is not yet known.
func NewUnresolvedPlayer() *FixedPlayer {
	return &FixedPlayer{}
}

// CurrentWorldID implements PlayerState.
func (p *FixedPlayer) CurrentWorldID() (uint32, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.worldID, p.known
}

// SetWorld moves the player to another world.
func (p *FixedPlayer) SetWorld(worldID uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.worldID = worldID
	p.known = true
}

// ClearWorld marks the player unresolved.
func (p *FixedPlayer) ClearWorld() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.known = false
}

// Broadcaster is an in-process WorldChangeNotifier.
type Broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]func())}
}

// Subscribe implements WorldChangeNotifier.
func (b *Broadcaster) Subscribe(fn func()) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Notify invokes every subscriber.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// LogSink reports errors through the structured logger. The console
// harness's stand-in for the in-game chat window.
type LogSink struct{}

// PrintError implements ErrorSink.
func (LogSink) PrintError(msg string) {
	logging.Error().Str("component", "chat").Msg(msg)
}
