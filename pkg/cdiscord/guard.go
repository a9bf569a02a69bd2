/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// PanicMode selects what recoverGuard does after catching a panic.
type PanicMode int32

const (
	// PanicAbort logs the panic and terminates the process. This is the
	// default: the calling convention between Go and the SDK defines no
	// unwind semantics, so letting a panic continue through a native
	// frame is undefined behavior.
	PanicAbort PanicMode = iota

	// PanicLog logs the panic and suppresses it, letting the native
	// caller continue. The callback's work is lost but the boundary
	// stays intact.
	PanicLog
)

var panicMode atomic.Int32

// SetPanicMode changes how panics inside native callbacks are handled.
func SetPanicMode(m PanicMode) {
	panicMode.Store(int32(m))
}

// recoverGuard is deferred at the top of every function whose frame sits
// directly below native code: event-table trampolines, completion
// trampolines, and the log hook. It intercepts a panic before it can
// unwind into the SDK. It does nothing on the normal path.
func recoverGuard(callback string) {
	r := recover()
	if r == nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"callback": callback,
		"panic":    r,
	}).Error("panic reached the native callback boundary")
	if PanicMode(panicMode.Load()) == PanicAbort {
		os.Stderr.Write(debug.Stack())
		os.Exit(134)
	}
}
