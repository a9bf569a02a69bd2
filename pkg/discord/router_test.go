/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crrow/discordsdk-go/pkg/cdiscord"
)

func TestRouterVoiceSettingsLandsOnItsQueue(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	r.OnVoiceSettingsUpdate()

	assert.Equal(t, 1, events.VoiceSettingsUpdate.Len())
	// Nothing leaked onto any other queue.
	events.VoiceSettingsUpdate.Drain()
	assert.Zero(t, events.DrainAll())
}

func TestRouterPreservesPerKindOrder(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	for i := int64(1); i <= 4; i++ {
		r.OnLobbyMemberConnect(10, i)
	}

	got := events.LobbyMemberConnect.Drain()
	require.Len(t, got, 4)
	for i, ev := range got {
		assert.Equal(t, int64(i+1), ev.UserID)
	}
}

func TestRouterSpeakingScenario(t *testing.T) {
	// A member talks then stops while a settings change interleaves:
	// each queue sees only its own kind, in arrival order.
	events := &Events{}
	r := &router{events: events}

	r.OnLobbySpeaking(10, 7, true)
	r.OnVoiceSettingsUpdate()
	r.OnLobbySpeaking(10, 7, false)

	speaking := events.LobbySpeaking.Drain()
	require.Len(t, speaking, 2)
	assert.True(t, speaking[0].Speaking)
	assert.False(t, speaking[1].Speaking)
	assert.Equal(t, 1, events.VoiceSettingsUpdate.Len())
}

func TestRouterDecodesJoinRequest(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	raw := cdiscord.User{ID: 99}
	copy(raw.Username[:], "asker")
	copy(raw.Discriminator[:], "0001")
	r.OnActivityJoinRequest(raw)

	got := events.ActivityJoinRequest.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, int64(99), got[0].User.ID)
	assert.Equal(t, "asker", got[0].User.Username)
	assert.Equal(t, "0001", got[0].User.Discriminator)
}

func TestRouterDropsMalformedUser(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	raw := cdiscord.User{ID: 99}
	raw.Username[0] = 0xFF
	raw.Username[1] = 0xFE
	r.OnActivityJoinRequest(raw)

	assert.Zero(t, events.ActivityJoinRequest.Len())

	// A later, well-formed event of the same kind still arrives.
	ok := cdiscord.User{ID: 100}
	copy(ok.Username[:], "fine")
	r.OnActivityJoinRequest(ok)
	assert.Equal(t, 1, events.ActivityJoinRequest.Len())
}

func TestRouterEntitlements(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	r.OnEntitlementCreate(cdiscord.Entitlement{ID: 1, Kind: 1, SkuID: 5})
	r.OnEntitlementDelete(cdiscord.Entitlement{ID: 1, Kind: 1, SkuID: 5})

	created := events.EntitlementCreate.Drain()
	require.Len(t, created, 1)
	assert.Equal(t, EntitlementPurchase, created[0].Entitlement.Kind)
	assert.Equal(t, int64(5), created[0].Entitlement.SkuID)
	assert.Equal(t, 1, events.EntitlementDelete.Len())
}

func TestRouterNetworkMessagePayload(t *testing.T) {
	events := &Events{}
	r := &router{events: events}

	r.OnNetworkMessage(42, 3, []byte("datagram"))

	got := events.NetworkMessage.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, uint64(42), got[0].PeerID)
	assert.Equal(t, uint8(3), got[0].ChannelID)
	assert.Equal(t, []byte("datagram"), got[0].Data)
}
