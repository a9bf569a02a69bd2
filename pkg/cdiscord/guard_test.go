/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import "testing"

func TestRecoverGuardLogMode(t *testing.T) {
	SetPanicMode(PanicLog)
	defer SetPanicMode(PanicAbort)

	// Reaching the end of the test is the assertion: in log mode a
	// panic at the native boundary is contained instead of unwinding.
	func() {
		defer recoverGuard("test_callback")
		panic("handler blew up")
	}()
}

func TestRecoverGuardNoPanic(t *testing.T) {
	func() {
		defer recoverGuard("test_callback")
	}()
}

func TestDispatchContainsHandlerPanic(t *testing.T) {
	SetPanicMode(PanicLog)
	defer SetPanicMode(PanicAbort)

	h := &panickyHandler{}
	id := registerSession(h)
	defer unregisterSession(id)

	// Mirror the boundary frame: the guard sits between libffi and the
	// dispatch path, so a panicking handler never unwinds into C.
	func() {
		defer recoverGuard("on_current_user_update")
		dispatchCurrentUserUpdate(id)
	}()

	if !h.called {
		t.Error("handler was not invoked")
	}
}

type panickyHandler struct {
	nopHandler
	called bool
}

func (h *panickyHandler) OnCurrentUserUpdate() {
	h.called = true
	panic("user code panic")
}
