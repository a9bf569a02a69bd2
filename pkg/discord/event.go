/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// Event payloads. One struct per SDK event; each lands on its own queue
// in Events in the order the SDK delivered it.

// CurrentUserUpdate fires when the connected user's profile changes.
// The new profile is fetched with Discord.CurrentUser.
type CurrentUserUpdate struct{}

// ActivityJoin fires when the user accepted a join invite; Secret is
// the join secret published by the inviting client.
type ActivityJoin struct {
	Secret string
}

// ActivitySpectate fires when the user accepted a spectate invite.
type ActivitySpectate struct {
	Secret string
}

// ActivityJoinRequest fires when another user asks to join.
type ActivityJoinRequest struct {
	User User
}

// ActivityInvite fires when another user invites this one.
type ActivityInvite struct {
	Action   cdiscord.ActivityActionType
	User     User
	Activity Activity
}

// RelationshipRefresh fires once the relationship list is ready.
type RelationshipRefresh struct{}

// RelationshipUpdate fires when a single relationship changes.
type RelationshipUpdate struct {
	Relationship Relationship
}

// LobbyUpdate fires when lobby metadata changes.
type LobbyUpdate struct {
	LobbyID int64
}

// LobbyDelete fires when a lobby is deleted.
type LobbyDelete struct {
	LobbyID int64
	Reason  uint32
}

// LobbyMemberConnect fires when a user joins a lobby.
type LobbyMemberConnect struct {
	LobbyID int64
	UserID  int64
}

// LobbyMemberUpdate fires when a lobby member's metadata changes.
type LobbyMemberUpdate struct {
	LobbyID int64
	UserID  int64
}

// LobbyMemberDisconnect fires when a user leaves a lobby.
type LobbyMemberDisconnect struct {
	LobbyID int64
	UserID  int64
}

// LobbyMessage carries a lobby chat message. Data is an owned copy.
type LobbyMessage struct {
	LobbyID int64
	UserID  int64
	Data    []byte
}

// LobbySpeaking fires when a lobby member starts or stops talking.
type LobbySpeaking struct {
	LobbyID  int64
	UserID   int64
	Speaking bool
}

// LobbyNetworkMessage carries a datagram sent over a lobby network
// channel. Data is an owned copy.
type LobbyNetworkMessage struct {
	LobbyID   int64
	UserID    int64
	ChannelID uint8
	Data      []byte
}

// NetworkMessage carries a datagram from a network peer. Data is an
// owned copy.
type NetworkMessage struct {
	PeerID    uint64
	ChannelID uint8
	Data      []byte
}

// NetworkRouteUpdate fires when this client's network route changes;
// the new route must be re-broadcast to peers.
type NetworkRouteUpdate struct {
	Route string
}

// OverlayToggle fires when the overlay opens or closes.
type OverlayToggle struct {
	Locked bool
}

// EntitlementCreate fires when the user gains an entitlement.
type EntitlementCreate struct {
	Entitlement Entitlement
}

// EntitlementDelete fires when an entitlement is revoked.
type EntitlementDelete struct {
	Entitlement Entitlement
}

// VoiceSettingsUpdate fires when any voice setting changes. The new
// values are read back with the Voice accessors.
type VoiceSettingsUpdate struct{}

// UserAchievementUpdate fires when achievement progress changes.
type UserAchievementUpdate struct {
	Achievement UserAchievement
}
