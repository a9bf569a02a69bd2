/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crrow/discordsdk-go/pkg/cdiscord"
)

func TestActivityRoundTrip(t *testing.T) {
	in := Activity{
		Kind:          ActivityPlaying,
		ApplicationID: 1234,
		Name:          "Spelunky",
		State:         "in a cave",
		Details:       "2-1",
		Timestamps: Timestamps{
			Start: time.Unix(1700000000, 0),
		},
		Assets: Assets{
			LargeImage: "cave",
			LargeText:  "The Caves",
		},
		Party: Party{
			ID:          "party-abc",
			CurrentSize: 2,
			MaxSize:     4,
		},
		Secrets: Secrets{
			Join: "join-secret",
		},
		Instance: true,
	}

	raw, err := encodeActivity(in)
	require.NoError(t, err)
	out, err := decodeActivity(raw)
	require.NoError(t, err)

	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.State, out.State)
	assert.Equal(t, in.Details, out.Details)
	assert.Equal(t, in.Assets, out.Assets)
	assert.Equal(t, in.Party, out.Party)
	assert.Equal(t, in.Secrets, out.Secrets)
	assert.Equal(t, in.Instance, out.Instance)
	assert.True(t, in.Timestamps.Start.Equal(out.Timestamps.Start))
	assert.True(t, out.Timestamps.End.IsZero())
}

func TestEncodeActivityNameBoundary(t *testing.T) {
	// Capacity minus one fits; the full capacity does not, because the
	// terminator needs its byte.
	fits := Activity{Name: strings.Repeat("a", cdiscord.ActivityTextCap-1)}
	_, err := encodeActivity(fits)
	assert.NoError(t, err)

	overflows := Activity{Name: strings.Repeat("a", cdiscord.ActivityTextCap)}
	_, err = encodeActivity(overflows)
	assert.ErrorIs(t, err, cdiscord.ErrTooLarge)
}

func TestEncodeActivityInteriorNul(t *testing.T) {
	_, err := encodeActivity(Activity{State: "a\x00b"})
	assert.ErrorIs(t, err, cdiscord.ErrInteriorNul)
}

func TestDecodeUserMalformed(t *testing.T) {
	raw := cdiscord.User{ID: 1}
	raw.Avatar[0] = 0xC0 // truncated multi-byte sequence
	_, err := decodeUser(raw)
	assert.ErrorIs(t, err, cdiscord.ErrInvalidUTF8)
}

func TestInputModeRoundTrip(t *testing.T) {
	in := InputMode{Kind: InputPushToTalk, Shortcut: "ctrl + t"}
	raw, err := encodeInputMode(in)
	require.NoError(t, err)
	out, err := decodeInputMode(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeInputModeShortcutBoundary(t *testing.T) {
	fits := InputMode{Shortcut: strings.Repeat("k", cdiscord.ShortcutCap-1)}
	_, err := encodeInputMode(fits)
	assert.NoError(t, err)

	overflows := InputMode{Shortcut: strings.Repeat("k", cdiscord.ShortcutCap)}
	_, err = encodeInputMode(overflows)
	assert.ErrorIs(t, err, cdiscord.ErrTooLarge)
}

func TestDecodeAchievement(t *testing.T) {
	raw := cdiscord.UserAchievement{
		UserID:          1,
		AchievementID:   2,
		PercentComplete: 50,
	}
	copy(raw.UnlockedAt[:], "2026-08-01T00:00:00Z")

	got, err := decodeAchievement(raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(50), got.PercentComplete)
	assert.Equal(t, "2026-08-01T00:00:00Z", got.UnlockedAt)
}

func TestDecodeFileStat(t *testing.T) {
	raw := cdiscord.FileStat{Size: 1024, LastModified: 1700000000}
	copy(raw.Filename[:], "save.dat")

	got, err := decodeFileStat(raw)
	require.NoError(t, err)
	assert.Equal(t, "save.dat", got.Filename)
	assert.Equal(t, uint64(1024), got.Size)
	assert.Equal(t, time.Unix(1700000000, 0), got.LastModified)
}

func TestDecodeRelationship(t *testing.T) {
	raw := cdiscord.Relationship{Kind: int32(RelationshipFriend)}
	raw.User.ID = 7
	copy(raw.User.Username[:], "friend")
	raw.Presence.Status = int32(StatusIdle)

	got, err := decodeRelationship(raw)
	require.NoError(t, err)
	assert.Equal(t, RelationshipFriend, got.Kind)
	assert.Equal(t, "friend", got.User.Username)
	assert.Equal(t, StatusIdle, got.Presence.Status)
}
