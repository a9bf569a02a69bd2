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

// userVtbl mirrors struct IDiscordUserManager.
type userVtbl struct {
	getCurrentUser            uintptr
	getUser                   uintptr
	getCurrentUserPremiumType uintptr
	currentUserHasFlag        uintptr
}

// PremiumType is the Nitro subscription tier of the current user.
type PremiumType int32

const (
	PremiumNone  PremiumType = 0
	PremiumTier1 PremiumType = 1
	PremiumTier2 PremiumType = 2
)

// UserFlag is a bit in the current user's account flags.
type UserFlag int32

const (
	UserFlagPartner         UserFlag = 2
	UserFlagHypeSquadEvents UserFlag = 4
	UserFlagHypeSquadHouse1 UserFlag = 64
	UserFlagHypeSquadHouse2 UserFlag = 128
	UserFlagHypeSquadHouse3 UserFlag = 256
)

var (
	userCifsOnce sync.Once

	// EDiscordResult get_current_user(mgr*, DiscordUser* out)
	cifUserGetCurrent ffi.Cif
	// void get_user(mgr*, DiscordSnowflake user_id, void* callback_data, callback)
	cifUserGet ffi.Cif
	// EDiscordResult get_current_user_premium_type(mgr*, EDiscordPremiumType* out)
	cifUserPremiumType ffi.Cif
	// EDiscordResult current_user_has_flag(mgr*, EDiscordUserFlag flag, bool* out)
	cifUserHasFlag ffi.Cif
)

func prepUserCifs() {
	userCifsOnce.Do(func() {
		mustPrepCif(&cifUserGetCurrent, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifUserGet, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifUserPremiumType, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifUserHasFlag, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer)
	})
}

func (c *Core) userManager() (uintptr, *userVtbl, error) {
	prepUserCifs()
	mgr, err := c.manager(&c.user, c.vtbl.getUserManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*userVtbl)(unsafe.Pointer(mgr)), nil
}

// CurrentUser returns the connected user. Only valid after the first
// OnCurrentUserUpdate event has fired.
func (c *Core) CurrentUser() (User, error) {
	mgr, vt, err := c.userManager()
	if err != nil {
		return User{}, err
	}
	var ret ffi.Arg
	var out User
	outPtr := unsafe.Pointer(&out)
	call(&cifUserGetCurrent, vt.getCurrentUser, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&outPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return User{}, err
	}
	return out, nil
}

// GetUser fetches another user by ID; cb receives an owned copy of the
// user exactly once on a future RunCallbacks.
func (c *Core) GetUser(userID int64, cb UserCompletion) error {
	mgr, vt, err := c.userManager()
	if err != nil {
		return err
	}
	id := bindUserCompletion(cb)
	if err := guardSlot(vt.getUser, id); err != nil {
		return err
	}
	callback := userCallbackPtr
	call(&cifUserGet, vt.getUser, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&userID), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// CurrentUserPremiumType returns the connected user's Nitro tier.
func (c *Core) CurrentUserPremiumType() (PremiumType, error) {
	mgr, vt, err := c.userManager()
	if err != nil {
		return PremiumNone, err
	}
	var ret ffi.Arg
	var out PremiumType
	outPtr := unsafe.Pointer(&out)
	call(&cifUserPremiumType, vt.getCurrentUserPremiumType, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&outPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return PremiumNone, err
	}
	return out, nil
}

// CurrentUserHasFlag reports whether flag is set on the connected user.
func (c *Core) CurrentUserHasFlag(flag UserFlag) (bool, error) {
	mgr, vt, err := c.userManager()
	if err != nil {
		return false, err
	}
	var ret ffi.Arg
	var has bool
	kind := int32(flag)
	hasPtr := unsafe.Pointer(&has)
	call(&cifUserHasFlag, vt.currentUserHasFlag, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&kind), unsafe.Pointer(&hasPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return false, err
	}
	return has, nil
}
