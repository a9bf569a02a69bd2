/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Package cdiscord contains the low-level FFI bindings to the Discord
// Game SDK shared library.
//
// # The Problem
//
// The Game SDK is a C library with an unusual shape: it exports exactly
// one symbol, DiscordCreate. Every other entry point is a function
// pointer read out of a "manager" struct (a hand-rolled vtable) that the
// library hands back at runtime. Notifications flow the other way: at
// session creation we register per-subsystem tables of C function
// pointers, and the SDK invokes them with raw pointers and an opaque
// context value whenever the application polls run_callbacks.
//
// # The Solution
//
// libffi covers both directions:
//
//   - Outbound calls go through prepared CIFs (ffi.PrepCif) and the raw
//     slot address, since there is no symbol to bind a ffi.Fun to.
//   - Inbound callbacks are libffi closures: dynamically generated
//     machine code with a stable C-callable address that forwards into a
//     Go trampoline (see closure.go).
//
// # Architecture
//
//	┌──────────────────┐  DiscordCreate   ┌───────────────────┐
//	│ discord_game_sdk │ ◀──────────────  │ cdiscord.Create   │
//	│    (C library)   │                  │                   │
//	│                  │  vtable calls    │ storage, overlay, │
//	│   run_callbacks  │ ◀──────────────  │ voice, ...        │
//	│        │         │                  └───────────────────┘
//	│        ▼         │  event tables    ┌───────────────────┐
//	│  slot closures   │ ──────────────▶  │ dispatch funcs    │
//	│  completion cbs  │ ──────────────▶  │ completion box    │
//	└──────────────────┘                  └───────────────────┘
//
// # Context values
//
// A Go pointer must never be handed to C for retention, so the opaque
// context values the SDK carries for us are registry IDs: the session ID
// registered at Create (delivered to every event-table slot) and a
// per-operation completion ID (delivered to the matching completion
// trampoline, consumed on first delivery). See events.go and
// completion.go.
//
// # Thread safety
//
// The SDK is single-threaded by contract: all callbacks fire on the
// thread that calls RunCallbacks, during that call. The registries still
// use sync.Map so that handles may be created or torn down from other
// goroutines.
package cdiscord

import (
	"os"
	"runtime"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// Library state - loaded once at package init.
// loadErr is checked by every entry point that needs the native library,
// so a missing shared library surfaces as an error from Create rather
// than a panic.
var (
	lib     ffi.Lib
	loadErr error

	// EDiscordResult DiscordCreate(DiscordVersion version,
	//     struct DiscordCreateParams* params, struct IDiscordCore** result)
	fnDiscordCreate ffi.Fun
)

func init() {
	lib, loadErr = ffi.Load(libraryName())
	if loadErr != nil {
		return
	}

	fnDiscordCreate, loadErr = lib.Prep("DiscordCreate",
		&ffi.TypeSint32,  // return: EDiscordResult
		&ffi.TypeSint32,  // arg 0: DiscordVersion
		&ffi.TypePointer, // arg 1: DiscordCreateParams*
		&ffi.TypePointer) // arg 2: IDiscordCore**
}

// libraryName returns the platform-specific name of the Game SDK shared
// library. The DISCORD_GAME_SDK environment variable overrides it, which
// is how tests and packagers point at a non-default location.
func libraryName() string {
	if path := os.Getenv("DISCORD_GAME_SDK"); path != "" {
		return path
	}
	switch runtime.GOOS {
	case "windows":
		return "discord_game_sdk.dll"
	case "darwin":
		return "discord_game_sdk.dylib"
	default:
		return "discord_game_sdk.so"
	}
}

// call invokes a native function pointer with a prepared call interface.
// Arguments are passed as pointers to the values, matching libffi's
// avalue convention.
func call(cif *ffi.Cif, fn uintptr, ret unsafe.Pointer, args ...unsafe.Pointer) {
	ffi.Call(cif, fn, ret, args...)
}
