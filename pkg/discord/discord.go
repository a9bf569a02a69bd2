/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package discord provides a high-level, Go-idiomatic API for the
// Discord Game SDK.
//
// This package wraps the low-level cdiscord bindings with:
//   - Go strings and time.Time instead of fixed C buffers and unix seconds
//   - error returns instead of raw result codes
//   - typed per-kind event queues instead of callback tables
//   - functional completion callbacks for async SDK calls
//
// # Quick Start
//
//	d, _ := discord.New(clientID, discord.CreateDefault)
//	defer d.Close()
//
//	for {
//	    if err := d.RunCallbacks(); err != nil {
//	        break
//	    }
//	    for ev, ok := d.Events().ActivityJoin.TryPop(); ok; ev, ok = d.Events().ActivityJoin.TryPop() {
//	        joinGame(ev.Secret)
//	    }
//	    time.Sleep(16 * time.Millisecond)
//	}
//
// # Architecture
//
// The discord package is layered on top of cdiscord:
//
//	┌─────────────────────────────────────┐
//	│  Your Application                   │
//	├─────────────────────────────────────┤
//	│  discord (high-level Go API)        │  <- This package
//	├─────────────────────────────────────┤
//	│  cdiscord (low-level FFI bindings)  │
//	├─────────────────────────────────────┤
//	│  libffi (C calling convention)      │
//	├─────────────────────────────────────┤
//	│  discord_game_sdk (C shared lib)    │
//	└─────────────────────────────────────┘
//
// All SDK callbacks, event delivery included, happen inside
// RunCallbacks on whichever goroutine calls it. The queues returned by
// Events are safe to consume from any goroutine.
package discord

import (
	"github.com/crrow/discordsdk-go/pkg/cdiscord"
)

// CreateFlags controls how the client behaves when Discord is not
// running.
type CreateFlags = cdiscord.CreateFlags

const (
	// CreateDefault requires Discord to be running and exits the game
	// if it is not.
	CreateDefault = cdiscord.CreateDefault
	// CreateNoRequireDiscord lets the game keep running without
	// Discord; SDK calls then fail with an error instead.
	CreateNoRequireDiscord = cdiscord.CreateNoRequireDiscord
)

// Discord is a connected Game SDK client. All methods are safe for
// concurrent use, but callbacks only fire from inside RunCallbacks.
type Discord struct {
	core   *cdiscord.Core
	events *Events
}

// New connects to the running Discord client for the given application.
func New(clientID int64, flags CreateFlags) (*Discord, error) {
	d := &Discord{events: &Events{}}
	core, err := cdiscord.Create(clientID, flags, &router{events: d.events})
	if err != nil {
		return nil, err
	}
	d.core = core
	return d, nil
}

// RunCallbacks pumps the SDK once: transport reads, event delivery and
// pending completions all happen inside this call. Call it every frame.
func (d *Discord) RunCallbacks() error {
	return d.core.RunCallbacks()
}

// Events returns the per-kind event queues. The returned value is
// owned by the client and stays valid until Close.
func (d *Discord) Events() *Events {
	return d.events
}

// Close tears the client down. Queued events are discarded; callbacks
// still pending inside the SDK are dropped rather than delivered to a
// dead session.
func (d *Discord) Close() {
	d.core.Destroy()
	d.events.DrainAll()
}

// SetLogHook routes the SDK's internal log lines into this process's
// structured logger at the matching severity.
func (d *Discord) SetLogHook(minLevel cdiscord.LogLevel) error {
	return d.core.SetLogHook(minLevel)
}
