/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// PremiumType is the Nitro subscription tier of the current user.
type PremiumType = cdiscord.PremiumType

const (
	PremiumNone  = cdiscord.PremiumNone
	PremiumTier1 = cdiscord.PremiumTier1
	PremiumTier2 = cdiscord.PremiumTier2
)

// UserFlag is a bit in a user's account flags.
type UserFlag = cdiscord.UserFlag

// CurrentUser returns the connected user. Only valid after the first
// CurrentUserUpdate event has been delivered.
func (d *Discord) CurrentUser() (User, error) {
	raw, err := d.core.CurrentUser()
	if err != nil {
		return User{}, err
	}
	return decodeUser(raw)
}

// GetUser fetches another user by ID. cb fires exactly once from a
// future RunCallbacks; on success err is nil and user is populated.
func (d *Discord) GetUser(userID int64, cb func(user User, err error)) error {
	return d.core.GetUser(userID, func(raw cdiscord.User, err error) {
		if err != nil {
			cb(User{}, err)
			return
		}
		user, err := decodeUser(raw)
		if err != nil {
			cb(User{}, err)
			return
		}
		cb(user, nil)
	})
}

// CurrentUserPremiumType returns the connected user's Nitro tier.
func (d *Discord) CurrentUserPremiumType() (PremiumType, error) {
	return d.core.CurrentUserPremiumType()
}

// CurrentUserHasFlag reports whether flag is set on the connected user.
func (d *Discord) CurrentUserHasFlag(flag UserFlag) (bool, error) {
	return d.core.CurrentUserHasFlag(flag)
}
