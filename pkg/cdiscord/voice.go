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

// voiceVtbl mirrors struct IDiscordVoiceManager.
type voiceVtbl struct {
	getInputMode   uintptr
	setInputMode   uintptr
	isSelfMute     uintptr
	setSelfMute    uintptr
	isSelfDeaf     uintptr
	setSelfDeaf    uintptr
	isLocalMute    uintptr
	setLocalMute   uintptr
	getLocalVolume uintptr
	setLocalVolume uintptr
}

// InputModeKind selects how voice capture is triggered.
type InputModeKind int32

const (
	InputModeVoiceActivity InputModeKind = 0
	InputModePushToTalk    InputModeKind = 1
)

var (
	voiceCifsOnce sync.Once

	// set_input_mode takes DiscordInputMode by value, so libffi needs a
	// struct type mirroring {int32_t type; char shortcut[256]}.
	typeInputMode ffi.Type

	// EDiscordResult get_input_mode(mgr*, DiscordInputMode* out)
	cifVoiceGetInputMode ffi.Cif
	// void set_input_mode(mgr*, DiscordInputMode input_mode, void* callback_data, callback)
	cifVoiceSetInputMode ffi.Cif
	// EDiscordResult is_self_mute(mgr*, bool* out) / is_self_deaf
	cifVoiceGetFlag ffi.Cif
	// EDiscordResult set_self_mute(mgr*, bool) / set_self_deaf
	cifVoiceSetFlag ffi.Cif
	// EDiscordResult is_local_mute(mgr*, DiscordSnowflake user_id, bool* out)
	cifVoiceGetLocalMute ffi.Cif
	// EDiscordResult set_local_mute(mgr*, DiscordSnowflake user_id, bool mute)
	cifVoiceSetLocalMute ffi.Cif
	// EDiscordResult get_local_volume(mgr*, DiscordSnowflake user_id, uint8_t* out)
	cifVoiceGetLocalVolume ffi.Cif
	// EDiscordResult set_local_volume(mgr*, DiscordSnowflake user_id, uint8_t volume)
	cifVoiceSetLocalVolume ffi.Cif
)

func prepVoiceCifs() {
	voiceCifsOnce.Do(func() {
		elems := make([]*ffi.Type, 0, ShortcutCap+1)
		elems = append(elems, &ffi.TypeSint32)
		for i := 0; i < ShortcutCap; i++ {
			elems = append(elems, &ffi.TypeUint8)
		}
		typeInputMode = ffi.NewType(elems...)

		mustPrepCif(&cifVoiceGetInputMode, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifVoiceSetInputMode, &ffi.TypeVoid,
			&ffi.TypePointer, &typeInputMode, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifVoiceGetFlag, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifVoiceSetFlag, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeUint8)
		mustPrepCif(&cifVoiceGetLocalMute, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypePointer)
		mustPrepCif(&cifVoiceSetLocalMute, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypeUint8)
		mustPrepCif(&cifVoiceGetLocalVolume, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypePointer)
		mustPrepCif(&cifVoiceSetLocalVolume, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypeUint8)
	})
}

func (c *Core) voiceManager() (uintptr, *voiceVtbl, error) {
	prepVoiceCifs()
	mgr, err := c.manager(&c.voice, c.vtbl.getVoiceManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*voiceVtbl)(unsafe.Pointer(mgr)), nil
}

// VoiceInputMode returns the current voice capture mode.
func (c *Core) VoiceInputMode() (InputMode, error) {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return InputMode{}, err
	}
	var ret ffi.Arg
	var out InputMode
	outPtr := unsafe.Pointer(&out)
	call(&cifVoiceGetInputMode, vt.getInputMode, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&outPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return InputMode{}, err
	}
	return out, nil
}

// VoiceSetInputMode changes the voice capture mode; cb fires exactly
// once with the outcome.
func (c *Core) VoiceSetInputMode(mode InputMode, cb Completion) error {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.setInputMode, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifVoiceSetInputMode, vt.setInputMode, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&mode), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// VoiceSelfMute reports whether the connected user muted themselves.
func (c *Core) VoiceSelfMute() (bool, error) {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return false, err
	}
	return c.voiceFlag(mgr, vt.isSelfMute)
}

// VoiceSetSelfMute mutes or unmutes the connected user.
func (c *Core) VoiceSetSelfMute(mute bool) error {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return err
	}
	return c.setVoiceFlag(mgr, vt.setSelfMute, mute)
}

// VoiceSelfDeaf reports whether the connected user deafened themselves.
func (c *Core) VoiceSelfDeaf() (bool, error) {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return false, err
	}
	return c.voiceFlag(mgr, vt.isSelfDeaf)
}

// VoiceSetSelfDeaf deafens or undeafens the connected user.
func (c *Core) VoiceSetSelfDeaf(deaf bool) error {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return err
	}
	return c.setVoiceFlag(mgr, vt.setSelfDeaf, deaf)
}

func (c *Core) voiceFlag(mgr, slot uintptr) (bool, error) {
	var ret ffi.Arg
	var flag bool
	flagPtr := unsafe.Pointer(&flag)
	call(&cifVoiceGetFlag, slot, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&flagPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return false, err
	}
	return flag, nil
}

func (c *Core) setVoiceFlag(mgr, slot uintptr, on bool) error {
	var ret ffi.Arg
	var flag uint8
	if on {
		flag = 1
	}
	call(&cifVoiceSetFlag, slot, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&flag))
	return Result(int32(ret)).Err()
}

// VoiceLocalMute reports whether userID is muted locally.
func (c *Core) VoiceLocalMute(userID int64) (bool, error) {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	var mute bool
	mutePtr := unsafe.Pointer(&mute)
	call(&cifVoiceGetLocalMute, vt.isLocalMute, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&mutePtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return false, err
	}
	return mute, nil
}

// VoiceSetLocalMute mutes or unmutes userID locally.
func (c *Core) VoiceSetLocalMute(userID int64, mute bool) error {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	var flag uint8
	if mute {
		flag = 1
	}
	call(&cifVoiceSetLocalMute, vt.setLocalMute, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&flag))
	return Result(int32(ret)).Err()
}

// VoiceLocalVolume returns the local playback volume for userID,
// 0..200 with 100 meaning unmodified.
func (c *Core) VoiceLocalVolume(userID int64) (uint8, error) {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return 0, err
	}
	var ret ffi.Arg
	var volume uint8
	volumePtr := unsafe.Pointer(&volume)
	call(&cifVoiceGetLocalVolume, vt.getLocalVolume, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&volumePtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return 0, err
	}
	return volume, nil
}

// VoiceSetLocalVolume sets the local playback volume for userID.
func (c *Core) VoiceSetLocalVolume(userID int64, volume uint8) error {
	mgr, vt, err := c.voiceManager()
	if err != nil {
		return err
	}
	var ret ffi.Arg
	call(&cifVoiceSetLocalVolume, vt.setLocalVolume, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&volume))
	return Result(int32(ret)).Err()
}
