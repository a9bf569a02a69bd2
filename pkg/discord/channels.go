/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

// Events is the set of per-kind queues a Discord client delivers into.
// Every queue is filled from inside RunCallbacks; consuming them never
// blocks delivery, so events queued between polls are preserved in
// arrival order per kind.
type Events struct {
	CurrentUserUpdate Queue[CurrentUserUpdate]

	ActivityJoin        Queue[ActivityJoin]
	ActivitySpectate    Queue[ActivitySpectate]
	ActivityJoinRequest Queue[ActivityJoinRequest]
	ActivityInvite      Queue[ActivityInvite]

	RelationshipRefresh Queue[RelationshipRefresh]
	RelationshipUpdate  Queue[RelationshipUpdate]

	LobbyUpdate           Queue[LobbyUpdate]
	LobbyDelete           Queue[LobbyDelete]
	LobbyMemberConnect    Queue[LobbyMemberConnect]
	LobbyMemberUpdate     Queue[LobbyMemberUpdate]
	LobbyMemberDisconnect Queue[LobbyMemberDisconnect]
	LobbyMessage          Queue[LobbyMessage]
	LobbySpeaking         Queue[LobbySpeaking]
	LobbyNetworkMessage   Queue[LobbyNetworkMessage]

	NetworkMessage     Queue[NetworkMessage]
	NetworkRouteUpdate Queue[NetworkRouteUpdate]

	OverlayToggle Queue[OverlayToggle]

	EntitlementCreate Queue[EntitlementCreate]
	EntitlementDelete Queue[EntitlementDelete]

	VoiceSettingsUpdate Queue[VoiceSettingsUpdate]

	UserAchievementUpdate Queue[UserAchievementUpdate]
}

// DrainAll discards everything queued on every kind and returns the
// number of events dropped. Used at teardown so stale events cannot be
// mistaken for fresh ones on a later session.
func (e *Events) DrainAll() int {
	n := len(e.CurrentUserUpdate.Drain())
	n += len(e.ActivityJoin.Drain())
	n += len(e.ActivitySpectate.Drain())
	n += len(e.ActivityJoinRequest.Drain())
	n += len(e.ActivityInvite.Drain())
	n += len(e.RelationshipRefresh.Drain())
	n += len(e.RelationshipUpdate.Drain())
	n += len(e.LobbyUpdate.Drain())
	n += len(e.LobbyDelete.Drain())
	n += len(e.LobbyMemberConnect.Drain())
	n += len(e.LobbyMemberUpdate.Drain())
	n += len(e.LobbyMemberDisconnect.Drain())
	n += len(e.LobbyMessage.Drain())
	n += len(e.LobbySpeaking.Drain())
	n += len(e.LobbyNetworkMessage.Drain())
	n += len(e.NetworkMessage.Drain())
	n += len(e.NetworkRouteUpdate.Drain())
	n += len(e.OverlayToggle.Drain())
	n += len(e.EntitlementCreate.Drain())
	n += len(e.EntitlementDelete.Drain())
	n += len(e.VoiceSettingsUpdate.Drain())
	n += len(e.UserAchievementUpdate.Drain())
	return n
}
