/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"sync"
	"unsafe"

	"github.com/jupiterrider/ffi"
)

// overlayVtbl mirrors the leading slots of struct IDiscordOverlayManager.
// The drawing and input-forwarding slots that follow are never called
// from here, so they are left undeclared.
type overlayVtbl struct {
	isEnabled          uintptr
	isLocked           uintptr
	setLocked          uintptr
	openActivityInvite uintptr
	openGuildInvite    uintptr
	openVoiceSettings  uintptr
}

// ActivityActionType selects which invite flavor an overlay prompt is for.
type ActivityActionType int32

const (
	ActivityActionJoin     ActivityActionType = 1
	ActivityActionSpectate ActivityActionType = 2
)

var (
	overlayCifsOnce sync.Once

	// void is_enabled(mgr*, bool* enabled) / void is_locked(mgr*, bool* locked)
	cifOverlayFlag ffi.Cif
	// void set_locked(mgr*, bool locked, void* callback_data, callback)
	cifOverlaySetLocked ffi.Cif
	// void open_activity_invite(mgr*, EDiscordActivityActionType type, void* callback_data, callback)
	cifOverlayOpenInvite ffi.Cif
	// void open_guild_invite(mgr*, const char* code, void* callback_data, callback)
	cifOverlayGuildInvite ffi.Cif
	// void open_voice_settings(mgr*, void* callback_data, callback)
	cifOverlayVoiceSettings ffi.Cif
)

func prepOverlayCifs() {
	overlayCifsOnce.Do(func() {
		mustPrepCif(&cifOverlayFlag, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifOverlaySetLocked, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeUint8, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifOverlayOpenInvite, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifOverlayGuildInvite, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifOverlayVoiceSettings, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
	})
}

func (c *Core) overlayManager() (uintptr, *overlayVtbl, error) {
	prepOverlayCifs()
	mgr, err := c.manager(&c.overlay, c.vtbl.getOverlayManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*overlayVtbl)(unsafe.Pointer(mgr)), nil
}

// OverlayEnabled reports whether the user has the overlay enabled.
func (c *Core) OverlayEnabled() (bool, error) {
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return false, err
	}
	var enabled bool
	enabledPtr := unsafe.Pointer(&enabled)
	call(&cifOverlayFlag, vt.isEnabled, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&enabledPtr))
	return enabled, nil
}

// OverlayLocked reports whether the overlay is currently locked.
func (c *Core) OverlayLocked() (bool, error) {
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return false, err
	}
	var locked bool
	lockedPtr := unsafe.Pointer(&locked)
	call(&cifOverlayFlag, vt.isLocked, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&lockedPtr))
	return locked, nil
}

// OverlaySetLocked locks or unlocks the overlay; cb fires exactly once
// with the outcome.
func (c *Core) OverlaySetLocked(locked bool, cb Completion) error {
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.setLocked, id); err != nil {
		return err
	}
	var flag uint8
	if locked {
		flag = 1
	}
	callback := resultCallbackPtr
	call(&cifOverlaySetLocked, vt.setLocked, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&flag), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// OverlayOpenActivityInvite opens the overlay invite modal for the
// current activity.
func (c *Core) OverlayOpenActivityInvite(action ActivityActionType, cb Completion) error {
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.openActivityInvite, id); err != nil {
		return err
	}
	kind := int32(action)
	callback := resultCallbackPtr
	call(&cifOverlayOpenInvite, vt.openActivityInvite, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&kind), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// OverlayOpenGuildInvite opens the overlay join modal for an invite code.
func (c *Core) OverlayOpenGuildInvite(code string, cb Completion) error {
	ccode, err := AppendNul(code)
	if err != nil {
		return err
	}
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.openGuildInvite, id); err != nil {
		return err
	}
	codePtr := bufferPointer(ccode)
	callback := resultCallbackPtr
	call(&cifOverlayGuildInvite, vt.openGuildInvite, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&codePtr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// OverlayOpenVoiceSettings opens the overlay voice settings panel.
func (c *Core) OverlayOpenVoiceSettings(cb Completion) error {
	mgr, vt, err := c.overlayManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.openVoiceSettings, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifOverlayVoiceSettings, vt.openVoiceSettings, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}
