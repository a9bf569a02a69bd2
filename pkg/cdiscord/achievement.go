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

// achievementVtbl mirrors struct IDiscordAchievementManager.
type achievementVtbl struct {
	setUserAchievement    uintptr
	fetchUserAchievements uintptr
	countUserAchievements uintptr
	getUserAchievement    uintptr
	getUserAchievementAt  uintptr
}

var (
	achievementCifsOnce sync.Once

	// void set_user_achievement(mgr*, DiscordSnowflake id, uint8_t percent, void* callback_data, callback)
	cifAchievementSet ffi.Cif
	// void fetch_user_achievements(mgr*, void* callback_data, callback)
	cifAchievementFetch ffi.Cif
	// void count_user_achievements(mgr*, int32_t* count)
	cifAchievementCount ffi.Cif
	// EDiscordResult get_user_achievement(mgr*, DiscordSnowflake id, DiscordUserAchievement* out)
	cifAchievementGet ffi.Cif
	// EDiscordResult get_user_achievement_at(mgr*, int32_t index, DiscordUserAchievement* out)
	cifAchievementGetAt ffi.Cif
)

func prepAchievementCifs() {
	achievementCifsOnce.Do(func() {
		mustPrepCif(&cifAchievementSet, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypeUint8, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifAchievementFetch, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifAchievementCount, &ffi.TypeVoid,
			&ffi.TypePointer, &ffi.TypePointer)
		mustPrepCif(&cifAchievementGet, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint64, &ffi.TypePointer)
		mustPrepCif(&cifAchievementGetAt, &ffi.TypeSint32,
			&ffi.TypePointer, &ffi.TypeSint32, &ffi.TypePointer)
	})
}

func (c *Core) achievementManager() (uintptr, *achievementVtbl, error) {
	prepAchievementCifs()
	mgr, err := c.manager(&c.achievement, c.vtbl.getAchievementManager)
	if err != nil {
		return 0, nil, err
	}
	return mgr, (*achievementVtbl)(unsafe.Pointer(mgr)), nil
}

// SetUserAchievement updates the current user's progress on an
// achievement; cb fires exactly once with the outcome.
func (c *Core) SetUserAchievement(achievementID int64, percentComplete uint8, cb Completion) error {
	mgr, vt, err := c.achievementManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.setUserAchievement, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifAchievementSet, vt.setUserAchievement, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&achievementID), unsafe.Pointer(&percentComplete),
		unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// FetchUserAchievements refreshes the local achievement cache; the
// getters below only return data after this completes successfully.
func (c *Core) FetchUserAchievements(cb Completion) error {
	mgr, vt, err := c.achievementManager()
	if err != nil {
		return err
	}
	id := bindCompletion(cb)
	if err := guardSlot(vt.fetchUserAchievements, id); err != nil {
		return err
	}
	callback := resultCallbackPtr
	call(&cifAchievementFetch, vt.fetchUserAchievements, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&id), unsafe.Pointer(&callback))
	return nil
}

// CountUserAchievements returns the number of cached achievements.
func (c *Core) CountUserAchievements() (int32, error) {
	mgr, vt, err := c.achievementManager()
	if err != nil {
		return 0, err
	}
	var count int32
	countPtr := unsafe.Pointer(&count)
	call(&cifAchievementCount, vt.countUserAchievements, nil,
		unsafe.Pointer(&mgr), unsafe.Pointer(&countPtr))
	return count, nil
}

// UserAchievement returns the cached achievement with the given ID.
func (c *Core) UserAchievement(achievementID int64) (UserAchievement, error) {
	mgr, vt, err := c.achievementManager()
	if err != nil {
		return UserAchievement{}, err
	}
	var ret ffi.Arg
	var out UserAchievement
	outPtr := unsafe.Pointer(&out)
	call(&cifAchievementGet, vt.getUserAchievement, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&achievementID), unsafe.Pointer(&outPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return UserAchievement{}, err
	}
	return out, nil
}

// UserAchievementAt returns the cached achievement at index.
func (c *Core) UserAchievementAt(index int32) (UserAchievement, error) {
	mgr, vt, err := c.achievementManager()
	if err != nil {
		return UserAchievement{}, err
	}
	var ret ffi.Arg
	var out UserAchievement
	outPtr := unsafe.Pointer(&out)
	call(&cifAchievementGetAt, vt.getUserAchievementAt, unsafe.Pointer(&ret),
		unsafe.Pointer(&mgr), unsafe.Pointer(&index), unsafe.Pointer(&outPtr))
	if err := Result(int32(ret)).Err(); err != nil {
		return UserAchievement{}, err
	}
	return out, nil
}
