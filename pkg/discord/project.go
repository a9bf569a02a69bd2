/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import (
	"fmt"
	"time"

	"github.com/crrow/discordsdk-go/pkg/cdiscord"
)

// Projections between the fixed-buffer structs the SDK hands over and
// the string-based types this package exposes. Decoding fails only on
// malformed text (no NUL in range, invalid UTF-8); sizes are enforced
// by the array types themselves. Encoding fails when a string does not
// fit its destination buffer, before anything is sent to the SDK.

func decodeUser(raw cdiscord.User) (User, error) {
	username, err := cdiscord.DecodeCharbuf(raw.Username[:])
	if err != nil {
		return User{}, fmt.Errorf("user %d username: %w", raw.ID, err)
	}
	discriminator, err := cdiscord.DecodeCharbuf(raw.Discriminator[:])
	if err != nil {
		return User{}, fmt.Errorf("user %d discriminator: %w", raw.ID, err)
	}
	avatar, err := cdiscord.DecodeCharbuf(raw.Avatar[:])
	if err != nil {
		return User{}, fmt.Errorf("user %d avatar: %w", raw.ID, err)
	}
	return User{
		ID:            raw.ID,
		Username:      username,
		Discriminator: discriminator,
		Avatar:        avatar,
		Bot:           raw.Bot,
	}, nil
}

func decodeActivity(raw cdiscord.Activity) (Activity, error) {
	a := Activity{
		Kind:          ActivityKind(raw.Kind),
		ApplicationID: raw.ApplicationID,
		Party: Party{
			CurrentSize: raw.Party.Size.CurrentSize,
			MaxSize:     raw.Party.Size.MaxSize,
		},
		Instance: raw.Instance,
	}
	if raw.Timestamps.Start != 0 {
		a.Timestamps.Start = time.Unix(raw.Timestamps.Start, 0)
	}
	if raw.Timestamps.End != 0 {
		a.Timestamps.End = time.Unix(raw.Timestamps.End, 0)
	}
	var err error
	for _, f := range []struct {
		name string
		buf  []byte
		dst  *string
	}{
		{"name", raw.Name[:], &a.Name},
		{"state", raw.State[:], &a.State},
		{"details", raw.Details[:], &a.Details},
		{"assets.large_image", raw.Assets.LargeImage[:], &a.Assets.LargeImage},
		{"assets.large_text", raw.Assets.LargeText[:], &a.Assets.LargeText},
		{"assets.small_image", raw.Assets.SmallImage[:], &a.Assets.SmallImage},
		{"assets.small_text", raw.Assets.SmallText[:], &a.Assets.SmallText},
		{"party.id", raw.Party.ID[:], &a.Party.ID},
		{"secrets.match", raw.Secrets.Match[:], &a.Secrets.Match},
		{"secrets.join", raw.Secrets.Join[:], &a.Secrets.Join},
		{"secrets.spectate", raw.Secrets.Spectate[:], &a.Secrets.Spectate},
	} {
		if *f.dst, err = cdiscord.DecodeCharbuf(f.buf); err != nil {
			return Activity{}, fmt.Errorf("activity %s: %w", f.name, err)
		}
	}
	return a, nil
}

func encodeActivity(a Activity) (cdiscord.Activity, error) {
	raw := cdiscord.Activity{
		Kind:          int32(a.Kind),
		ApplicationID: a.ApplicationID,
		Party: cdiscord.ActivityParty{
			Size: cdiscord.PartySize{
				CurrentSize: a.Party.CurrentSize,
				MaxSize:     a.Party.MaxSize,
			},
		},
		Instance: a.Instance,
	}
	if !a.Timestamps.Start.IsZero() {
		raw.Timestamps.Start = a.Timestamps.Start.Unix()
	}
	if !a.Timestamps.End.IsZero() {
		raw.Timestamps.End = a.Timestamps.End.Unix()
	}
	for _, f := range []struct {
		name string
		dst  []byte
		src  string
	}{
		{"name", raw.Name[:], a.Name},
		{"state", raw.State[:], a.State},
		{"details", raw.Details[:], a.Details},
		{"assets.large_image", raw.Assets.LargeImage[:], a.Assets.LargeImage},
		{"assets.large_text", raw.Assets.LargeText[:], a.Assets.LargeText},
		{"assets.small_image", raw.Assets.SmallImage[:], a.Assets.SmallImage},
		{"assets.small_text", raw.Assets.SmallText[:], a.Assets.SmallText},
		{"party.id", raw.Party.ID[:], a.Party.ID},
		{"secrets.match", raw.Secrets.Match[:], a.Secrets.Match},
		{"secrets.join", raw.Secrets.Join[:], a.Secrets.Join},
		{"secrets.spectate", raw.Secrets.Spectate[:], a.Secrets.Spectate},
	} {
		if _, err := cdiscord.EncodeCharbuf(f.dst, f.src); err != nil {
			return cdiscord.Activity{}, fmt.Errorf("activity %s: %w", f.name, err)
		}
	}
	return raw, nil
}

func decodeRelationship(raw cdiscord.Relationship) (Relationship, error) {
	user, err := decodeUser(raw.User)
	if err != nil {
		return Relationship{}, err
	}
	activity, err := decodeActivity(raw.Presence.Activity)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{
		Kind: RelationshipKind(raw.Kind),
		User: user,
		Presence: Presence{
			Status:   Status(raw.Presence.Status),
			Activity: activity,
		},
	}, nil
}

func decodeAchievement(raw cdiscord.UserAchievement) (UserAchievement, error) {
	unlockedAt, err := cdiscord.DecodeCharbuf(raw.UnlockedAt[:])
	if err != nil {
		return UserAchievement{}, fmt.Errorf("achievement %d unlocked_at: %w", raw.AchievementID, err)
	}
	return UserAchievement{
		UserID:          raw.UserID,
		AchievementID:   raw.AchievementID,
		PercentComplete: raw.PercentComplete,
		UnlockedAt:      unlockedAt,
	}, nil
}

func decodeEntitlement(raw cdiscord.Entitlement) Entitlement {
	return Entitlement{
		ID:    raw.ID,
		Kind:  EntitlementKind(raw.Kind),
		SkuID: raw.SkuID,
	}
}

func decodeFileStat(raw cdiscord.FileStat) (FileStat, error) {
	filename, err := cdiscord.DecodeCharbuf(raw.Filename[:])
	if err != nil {
		return FileStat{}, fmt.Errorf("file stat filename: %w", err)
	}
	return FileStat{
		Filename:     filename,
		Size:         raw.Size,
		LastModified: time.Unix(int64(raw.LastModified), 0),
	}, nil
}

func decodeInputMode(raw cdiscord.InputMode) (InputMode, error) {
	shortcut, err := cdiscord.DecodeCharbuf(raw.Shortcut[:])
	if err != nil {
		return InputMode{}, fmt.Errorf("input mode shortcut: %w", err)
	}
	return InputMode{
		Kind:     InputModeKind(raw.Kind),
		Shortcut: shortcut,
	}, nil
}

func encodeInputMode(mode InputMode) (cdiscord.InputMode, error) {
	raw := cdiscord.InputMode{Kind: int32(mode.Kind)}
	if _, err := cdiscord.EncodeCharbuf(raw.Shortcut[:], mode.Shortcut); err != nil {
		return cdiscord.InputMode{}, fmt.Errorf("input mode shortcut: %w", err)
	}
	return raw, nil
}
