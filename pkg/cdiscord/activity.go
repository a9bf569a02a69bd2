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

// activityVtbl mirrors struct IDiscordActivityManager.
type activityVtbl struct {
	registerCommand  uintptr
	registerSteam    uintptr
	updateActivity   uintptr
	clearActivity    uintptr
	sendRequestReply uintptr
	sendInvite       uintptr
	acceptInvite     uintptr
}

// JoinRequestReply is the answer to an incoming ask-to-join request.
type JoinRequestReply int32

const (
	JoinRequestNo     JoinRequestReply = 0
	JoinRequestYes    JoinRequestReply = 1
	JoinRequestIgnore JoinRequestReply = 2
)

var (
	activityCifsOnce sync.Once

	// EDiscordResult register_command(mgr*, const char* command)
	cifActivityRegisterCommand ffi.Cif
	// EDiscordResult register_steam(mgr*, uint32_t steam_id)
	cifActivityRegisterSteam ffi.Cif
	// void update_activity(mgr*, DiscordActivity* activity, void* callback_data, callback)
	cifActivityUpdate ffi.Cif
	// void clear_activity(mgr*, void* callback_data, callback)
	cifActivityClear ffi.Cif
	// void send_request_reply(mgr*, DiscordSnowflake user_id, EDiscordActivityJoinRequestReply reply, void* callback_data, callback)
	cifActivityRequestReply ffi.Cif
	// void send_invite(mgr*, DiscordSnowflake user_id, EDiscordActivityActionType type, const char* content, void* callback_data, callback)
	cifActivitySendInvite ffi.Cif
	// void accept_invite(mgr*, DiscordSnowflake user_id, void* callback_data, callback)
	cifActivityAcceptInvite ffi.Cif
)

func prepActivityCifs() {
	activityCifsOnce.Do(func() {
		mustPrepCif(&cifActivityRegisterCommand, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifActivityRegisterSteam, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeUint32)
		mustPrepCif(&cifActivityUpdate, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifActivityClear, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifActivityRequestReply, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypeSint32, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifActivitySendInvite, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypeSint32, &ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifActivityAcceptInvite, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypePointer, &ffi.TypePointer)
	})
}

func (c *Core) activityManager() (uintptr, *activityVtbl, error) {
	prepActivityCifs()
	mgr, err := c.manager(&c.activity, c.vtbl.getActivityManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*activityVtbl)(unsafe.Pointer(mgr)), nil
}

// RegisterCommand registers the command Discord launches the game with.
func (c *Core) RegisterCommand(command string) error {
	ccmd, err := AppendNul(command)
	if err != nil {
		return err
	}
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	cmdPtr := bufferPointer(ccmd)
	call(&cifActivityRegisterCommand, vt.registerCommand, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&cmdPtr))
	return Result(int32(ret)).Err()
}

// RegisterSteam registers the game's Steam app ID for launching.
func (c *Core) RegisterSteam(steamID uint32) error {
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	call(&cifActivityRegisterSteam, vt.registerSteam, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&steamID))
	return Result(int32(ret)).Err()
}

// UpdateActivity publishes the activity as rich presence. The struct is
// only read during the call, so a stack copy is enough.
func (c *Core) UpdateActivity(activity *Activity, cb Completion) error {
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.updateActivity, id); err != nil {
		return err
	}
	actPtr := unsafe.Pointer(activity)
	callback := resultCallbackPtr
	call(&cifActivityUpdate, vt.updateActivity, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&actPtr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// ClearActivity removes the published rich presence.
func (c *Core) ClearActivity(cb Completion) error {
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.clearActivity, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifActivityClear, vt.clearActivity, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// SendRequestReply answers an ask-to-join request from userID.
func (c *Core) SendRequestReply(userID int64, reply JoinRequestReply, cb Completion) error {
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.sendRequestReply, id); err != nil {
		return err
	}
	kind := int32(reply)
	callback := resultCallbackPtr
	call(&cifActivityRequestReply, vt.sendRequestReply, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&kind),
		unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// SendInvite invites userID to join or spectate the current activity.
func (c *Core) SendInvite(userID int64, action ActivityActionType, content string, cb Completion) error {
	ccontent, err := AppendNul(content)
	if err != nil {
		return err
	}
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.sendInvite, id); err != nil {
		return err
	}
	kind := int32(action)
	contentPtr := bufferPointer(ccontent)
	callback := resultCallbackPtr
	call(&cifActivitySendInvite, vt.sendInvite, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&kind),
		unsafe.Pointer(&contentPtr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// AcceptInvite accepts a pending activity invite from userID.
func (c *Core) AcceptInvite(userID int64, cb Completion) error {
	mgr, vt, err := c.activityManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.acceptInvite, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifActivityAcceptInvite, vt.acceptInvite, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}
