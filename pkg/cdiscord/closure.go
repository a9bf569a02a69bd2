/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// This file implements the mechanism that lets the SDK call Go code.
//
// The SDK receives plain C function pointers: event-table slots at
// session creation and completion callbacks per async call. Go functions
// have no C-callable address, so each one is fronted by a libffi
// closure: dynamically generated machine code with a stable address that
// marshals the C arguments and forwards into a Go trampoline.
//
// Closure creation follows four steps (the same recipe for every slot):
//
//  1. ClosureAlloc: allocate the closure and get its executable address
//  2. PrepCif: describe the slot's C signature (return + argument types)
//  3. NewCallback: wrap the Go trampoline as a libffi callback
//  4. PrepClosureLoc: wire code address -> CIF + callback
//
// Closures and CIFs are created during one-time initialization and are
// never freed; the SDK may hold their addresses for the whole process.

package cdiscord

import (
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// trampoline is the Go-side entry invoked by a libffi closure. args
// points at an array of pointers, one per C argument; each must be
// dereferenced to reach the actual value. An alias so plain function
// declarations stay assignable to ffi's callback type.
type trampoline = func(cif *ffi.Cif, ret unsafe.Pointer, args *unsafe.Pointer, userData unsafe.Pointer) uintptr

// liveClosures and liveCifs pin every allocated closure and CIF for the
// process lifetime: the native side holds their addresses, which the Go
// collector cannot see. Appended only from sync.Once initializers.
var (
	liveClosures []*ffi.Closure
	liveCifs     []*ffi.Cif
)

// newClosure builds a C-callable function pointer for fn with the given
// signature and returns its executable address. Failure to prepare a
// CIF or closure is a programming error in the signature tables, not a
// runtime condition, hence the panics.
func newClosure(name string, fn trampoline, ret *ffi.Type, args ...*ffi.Type) uintptr {
	var code unsafe.Pointer
	closure := ffi.ClosureAlloc(unsafe.Sizeof(ffi.Closure{}), &code)

	cif := new(ffi.Cif)
	if status := ffi.PrepCif(cif, ffi.DefaultAbi, uint32(len(args)), ret, args...); status != ffi.OK {
		panic("cdiscord: failed to prepare CIF for " + name)
	}

	goCallback := ffi.NewCallback(fn)
	if status := ffi.PrepClosureLoc(closure, cif, goCallback, nil, code); status != ffi.OK {
		panic("cdiscord: failed to prepare closure for " + name)
	}

	liveClosures = append(liveClosures, closure)
	liveCifs = append(liveCifs, cif)
	return uintptr(code)
}
