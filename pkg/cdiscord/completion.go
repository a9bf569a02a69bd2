/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Async calls in the SDK follow one pattern: the call takes an opaque
// callback_data pointer plus a C callback, and on some future
// run_callbacks the SDK invokes the callback exactly once with
// callback_data and a status code (plus optional out-parameters).
//
// The caller-supplied Go closure is boxed in a registry keyed by a
// monotonic ID; the ID is what crosses the boundary as callback_data.
// The trampoline consumes the box with LoadAndDelete, so a closure can
// run at most once no matter what the native side does: a second
// delivery on the same ID finds nothing and is logged. If the native
// call could not be issued after binding, the caller reclaims the box
// with abandonCompletion instead of waiting for a delivery that will
// never come.
//
// Status codes are mapped to Go errors here, inside the trampoline, and
// never later: a failing completion carries the typed Result and no
// success-shaped out-value.

package cdiscord

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"github.com/sirupsen/logrus"
)

// Completion receives the outcome of an async call that produces no
// data. err is nil on success or the typed Result on failure.
type Completion func(err error)

// DataCompletion receives the outcome of an async call that produces a
// byte buffer. data is owned by the callee and nil on failure.
type DataCompletion func(data []byte, err error)

// UserCompletion receives the outcome of an async user fetch.
type UserCompletion func(user User, err error)

// Completion registry state.
// A monotonic counter avoids ABA problems when IDs are recycled through
// native memory we do not control.
var (
	completionCounter uint64
	completions       sync.Map // map[uintptr]Completion
	dataCompletions   sync.Map // map[uintptr]DataCompletion
	userCompletions   sync.Map // map[uintptr]UserCompletion
)

// Trampoline addresses handed to the SDK as completion callbacks, one
// per completion shape. Initialized once, live forever.
var (
	completionOnce sync.Once

	resultCallbackPtr uintptr // void (*)(void* data, EDiscordResult)
	dataCallbackPtr   uintptr // void (*)(void* data, EDiscordResult, uint8_t*, uint32_t)
	userCallbackPtr   uintptr // void (*)(void* data, EDiscordResult, DiscordUser*)
)

func initCompletionClosures() {
	completionOnce.Do(func() {
		resultCallbackPtr = newClosure("completion_result", resultTrampoline,
			&ffi.TypeVoid,
			&ffi.TypePointer, // callback_data
			&ffi.TypeSint32)  // EDiscordResult

		dataCallbackPtr = newClosure("completion_data", dataTrampoline,
			&ffi.TypeVoid,
			&ffi.TypePointer, // callback_data
			&ffi.TypeSint32,  // EDiscordResult
			&ffi.TypePointer, // uint8_t* data
			&ffi.TypeUint32)  // uint32_t data_length

		userCallbackPtr = newClosure("completion_user", userTrampoline,
			&ffi.TypeVoid,
			&ffi.TypePointer, // callback_data
			&ffi.TypeSint32,  // EDiscordResult
			&ffi.TypePointer) // DiscordUser*
	})
}

func nextCompletionID() uintptr {
	return uintptr(atomic.AddUint64(&completionCounter, 1))
}

// bindCompletion boxes cb and returns the ID to pass as callback_data
// alongside resultCallbackPtr.
func bindCompletion(cb Completion) uintptr {
	initCompletionClosures()
	id := nextCompletionID()
	completions.Store(id, cb)
	return id
}

func bindDataCompletion(cb DataCompletion) uintptr {
	initCompletionClosures()
	id := nextCompletionID()
	dataCompletions.Store(id, cb)
	return id
}

func bindUserCompletion(cb UserCompletion) uintptr {
	initCompletionClosures()
	id := nextCompletionID()
	userCompletions.Store(id, cb)
	return id
}

// abandonCompletion reclaims a bound box whose native call failed before
// ownership was handed off. The closure is dropped without being called.
func abandonCompletion(id uintptr) {
	completions.Delete(id)
	dataCompletions.Delete(id)
	userCompletions.Delete(id)
}

// guardSlot abandons a bound box when the native vtable slot it was
// bound for turns out to be missing. Nothing was handed to the SDK, so
// the box must not linger in its registry.
func guardSlot(slot, id uintptr) error {
	if slot == 0 {
		abandonCompletion(id)
		return ResultInternalError
	}
	return nil
}

// consumeCompletion pops a box from its registry. The LoadAndDelete is
// what makes double delivery structurally impossible: once consumed, the
// ID maps to nothing.
func consumeCompletion(m *sync.Map, id uintptr, shape string) (any, bool) {
	cb, ok := m.LoadAndDelete(id)
	if !ok {
		logDroppedCompletion(shape, id)
	}
	return cb, ok
}

func logDroppedCompletion(shape string, id uintptr) {
	logrus.WithFields(logrus.Fields{
		"shape": shape,
		"id":    id,
	}).Warn("completion fired for an unknown or already consumed context")
}

func completeResult(id uintptr, res Result) {
	cb, ok := consumeCompletion(&completions, id, "result")
	if !ok {
		return
	}
	cb.(Completion)(res.Err())
}

func completeData(id uintptr, res Result, data *byte, length uint32) {
	cb, ok := consumeCompletion(&dataCompletions, id, "data")
	if !ok {
		return
	}
	fn := cb.(DataCompletion)
	if err := res.Err(); err != nil {
		fn(nil, err)
		return
	}
	// Copy before returning; the SDK reclaims the buffer after the
	// callback's stack frame unwinds.
	fn(cloneBytes(data, length), nil)
}

func completeUser(id uintptr, res Result, user *User) {
	cb, ok := consumeCompletion(&userCompletions, id, "user")
	if !ok {
		return
	}
	fn := cb.(UserCompletion)
	if err := res.Err(); err != nil {
		fn(User{}, err)
		return
	}
	if user == nil {
		fn(User{}, ResultInternalError)
		return
	}
	fn(*user, nil)
}

func resultTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	defer recoverGuard("completion_result")
	a := unsafe.Slice(args, 2)
	id := *(*uintptr)(a[0])
	res := Result(*(*int32)(a[1]))
	completeResult(id, res)
	return 0
}

func dataTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	defer recoverGuard("completion_data")
	a := unsafe.Slice(args, 4)
	id := *(*uintptr)(a[0])
	res := Result(*(*int32)(a[1]))
	data := *(**byte)(a[2])
	length := *(*uint32)(a[3])
	completeData(id, res, data, length)
	return 0
}

func userTrampoline(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr {
	defer recoverGuard("completion_user")
	a := unsafe.Slice(args, 3)
	id := *(*uintptr)(a[0])
	res := Result(*(*int32)(a[1]))
	user := *(**User)(a[2])
	completeUser(id, res, user)
	return 0
}
