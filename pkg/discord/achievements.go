/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// SetUserAchievement updates the current user's progress on an
// achievement to percentComplete, 0 to 100.
func (d *Discord) SetUserAchievement(achievementID int64, percentComplete uint8, cb func(error)) error {
	return d.core.SetUserAchievement(achievementID, percentComplete, cdiscord.Completion(cb))
}

// FetchUserAchievements refreshes the local achievement cache. The
// getters below only return data after this completes successfully.
func (d *Discord) FetchUserAchievements(cb func(error)) error {
	return d.core.FetchUserAchievements(cdiscord.Completion(cb))
}

// CountUserAchievements returns the number of cached achievements.
func (d *Discord) CountUserAchievements() (int32, error) {
	return d.core.CountUserAchievements()
}

// UserAchievement returns the cached achievement with the given ID.
func (d *Discord) UserAchievement(achievementID int64) (UserAchievement, error) {
	raw, err := d.core.UserAchievement(achievementID)
	if err != nil {
		return UserAchievement{}, err
	}
	return decodeAchievement(raw)
}

// UserAchievementAt returns the cached achievement at index, for
// iterating alongside CountUserAchievements.
func (d *Discord) UserAchievementAt(index int32) (UserAchievement, error) {
	raw, err := d.core.UserAchievementAt(index)
	if err != nil {
		return UserAchievement{}, err
	}
	return decodeAchievement(raw)
}
