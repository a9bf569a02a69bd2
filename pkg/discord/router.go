/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import (
	"github.com/sirupsen/logrus"

	"github.com/crrow/discordsdk-go/pkg/cdiscord"
)

// router implements cdiscord.EventHandler. Each callback projects the
// raw payload into its typed event and pushes it onto the matching
// queue. A payload that fails to decode is logged and dropped; the
// other queues are unaffected and later events of the same kind still
// arrive.
type router struct {
	events *Events
}

func dropMalformed(event string, err error) {
	logrus.WithFields(logrus.Fields{
		"event": event,
		"error": err,
	}).Warn("discord: dropping malformed event payload")
}

func (r *router) OnCurrentUserUpdate() {
	r.events.CurrentUserUpdate.Push(CurrentUserUpdate{})
}

func (r *router) OnActivityJoin(secret string) {
	r.events.ActivityJoin.Push(ActivityJoin{Secret: secret})
}

func (r *router) OnActivitySpectate(secret string) {
	r.events.ActivitySpectate.Push(ActivitySpectate{Secret: secret})
}

func (r *router) OnActivityJoinRequest(raw cdiscord.User) {
	user, err := decodeUser(raw)
	if err != nil {
		dropMalformed("activity_join_request", err)
		return
	}
	r.events.ActivityJoinRequest.Push(ActivityJoinRequest{User: user})
}

func (r *router) OnActivityInvite(kind int32, rawUser cdiscord.User, rawActivity cdiscord.Activity) {
	user, err := decodeUser(rawUser)
	if err != nil {
		dropMalformed("activity_invite", err)
		return
	}
	activity, err := decodeActivity(rawActivity)
	if err != nil {
		dropMalformed("activity_invite", err)
		return
	}
	r.events.ActivityInvite.Push(ActivityInvite{
		Action:   cdiscord.ActivityActionType(kind),
		User:     user,
		Activity: activity,
	})
}

func (r *router) OnRelationshipRefresh() {
	r.events.RelationshipRefresh.Push(RelationshipRefresh{})
}

func (r *router) OnRelationshipUpdate(raw cdiscord.Relationship) {
	relationship, err := decodeRelationship(raw)
	if err != nil {
		dropMalformed("relationship_update", err)
		return
	}
	r.events.RelationshipUpdate.Push(RelationshipUpdate{Relationship: relationship})
}

func (r *router) OnLobbyUpdate(lobbyID int64) {
	r.events.LobbyUpdate.Push(LobbyUpdate{LobbyID: lobbyID})
}

func (r *router) OnLobbyDelete(lobbyID int64, reason uint32) {
	r.events.LobbyDelete.Push(LobbyDelete{LobbyID: lobbyID, Reason: reason})
}

func (r *router) OnLobbyMemberConnect(lobbyID, userID int64) {
	r.events.LobbyMemberConnect.Push(LobbyMemberConnect{LobbyID: lobbyID, UserID: userID})
}

func (r *router) OnLobbyMemberUpdate(lobbyID, userID int64) {
	r.events.LobbyMemberUpdate.Push(LobbyMemberUpdate{LobbyID: lobbyID, UserID: userID})
}

func (r *router) OnLobbyMemberDisconnect(lobbyID, userID int64) {
	r.events.LobbyMemberDisconnect.Push(LobbyMemberDisconnect{LobbyID: lobbyID, UserID: userID})
}

func (r *router) OnLobbyMessage(lobbyID, userID int64, data []byte) {
	r.events.LobbyMessage.Push(LobbyMessage{LobbyID: lobbyID, UserID: userID, Data: data})
}

func (r *router) OnLobbySpeaking(lobbyID, userID int64, speaking bool) {
	r.events.LobbySpeaking.Push(LobbySpeaking{LobbyID: lobbyID, UserID: userID, Speaking: speaking})
}

func (r *router) OnLobbyNetworkMessage(lobbyID, userID int64, channelID uint8, data []byte) {
	r.events.LobbyNetworkMessage.Push(LobbyNetworkMessage{
		LobbyID:   lobbyID,
		UserID:    userID,
		ChannelID: channelID,
		Data:      data,
	})
}

func (r *router) OnNetworkMessage(peerID uint64, channelID uint8, data []byte) {
	r.events.NetworkMessage.Push(NetworkMessage{PeerID: peerID, ChannelID: channelID, Data: data})
}

func (r *router) OnNetworkRouteUpdate(route string) {
	r.events.NetworkRouteUpdate.Push(NetworkRouteUpdate{Route: route})
}

func (r *router) OnOverlayToggle(locked bool) {
	r.events.OverlayToggle.Push(OverlayToggle{Locked: locked})
}

func (r *router) OnEntitlementCreate(raw cdiscord.Entitlement) {
	r.events.EntitlementCreate.Push(EntitlementCreate{Entitlement: decodeEntitlement(raw)})
}

func (r *router) OnEntitlementDelete(raw cdiscord.Entitlement) {
	r.events.EntitlementDelete.Push(EntitlementDelete{Entitlement: decodeEntitlement(raw)})
}

func (r *router) OnVoiceSettingsUpdate() {
	r.events.VoiceSettingsUpdate.Push(VoiceSettingsUpdate{})
}

func (r *router) OnUserAchievementUpdate(raw cdiscord.UserAchievement) {
	achievement, err := decodeAchievement(raw)
	if err != nil {
		dropMalformed("user_achievement_update", err)
		return
	}
	r.events.UserAchievementUpdate.Push(UserAchievementUpdate{Achievement: achievement})
}
