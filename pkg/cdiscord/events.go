/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Event dispatch tables.
//
// DiscordCreateParams carries one table per subsystem, each a fixed
// struct of C function pointer slots, plus a single opaque event_data
// value that the SDK passes back to every slot. The tables here are
// package-level and filled once with libffi closure addresses; the SDK
// retains the table addresses for the whole session, which is safe
// because package-level variables are immortal.
//
// event_data is a session registry ID (never a Go pointer). Every slot
// recovers the session's EventHandler at a single point,
// sessionHandler, decodes whatever raw buffers or structs it received
// into owned values, and forwards. Raw pointers never survive past the
// dispatch function's return.
//
// Failure policy: the registration ABI has no slot for "malformed
// event", so an occurrence whose text fails to decode is logged and
// dropped in its entirety.

package cdiscord

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jupiterrider/ffi"
	"github.com/sirupsen/logrus"
)

// EventHandler receives every notification the SDK reports for one
// session, already converted to owned data. pkg/discord implements it by
// republishing each call as a typed event on the matching queue.
//
// All methods are invoked synchronously on the thread running
// RunCallbacks, in the order the SDK presents the occurrences.
type EventHandler interface {
	OnCurrentUserUpdate()

	OnActivityJoin(secret string)
	OnActivitySpectate(secret string)
	OnActivityJoinRequest(user User)
	OnActivityInvite(kind int32, user User, activity Activity)

	OnRelationshipRefresh()
	OnRelationshipUpdate(relationship Relationship)

	OnLobbyUpdate(lobbyID int64)
	OnLobbyDelete(lobbyID int64, reason uint32)
	OnLobbyMemberConnect(lobbyID, userID int64)
	OnLobbyMemberUpdate(lobbyID, userID int64)
	OnLobbyMemberDisconnect(lobbyID, userID int64)
	OnLobbyMessage(lobbyID, userID int64, data []byte)
	OnLobbySpeaking(lobbyID, userID int64, speaking bool)
	OnLobbyNetworkMessage(lobbyID, userID int64, channelID uint8, data []byte)

	OnNetworkMessage(peerID uint64, channelID uint8, data []byte)
	OnNetworkRouteUpdate(route string)

	OnOverlayToggle(locked bool)

	OnEntitlementCreate(entitlement Entitlement)
	OnEntitlementDelete(entitlement Entitlement)

	OnVoiceSettingsUpdate()

	OnUserAchievementUpdate(achievement UserAchievement)
}

// Session registry: maps the opaque event_data value back to the owning
// handler. Create registers, Destroy unregisters; a callback arriving
// for an unregistered session is dropped, which makes a late native
// callback after teardown harmless instead of undefined.
var (
	sessionCounter uint64
	sessions       sync.Map // map[uintptr]EventHandler
)

func registerSession(h EventHandler) uintptr {
	id := uintptr(atomic.AddUint64(&sessionCounter, 1))
	sessions.Store(id, h)
	return id
}

func unregisterSession(id uintptr) {
	sessions.Delete(id)
}

// sessionHandler is the single recovery point from the opaque context
// value to the typed owner.
func sessionHandler(id uintptr) EventHandler {
	if h, ok := sessions.Load(id); ok {
		return h.(EventHandler)
	}
	return nil
}

func dropEvent(callback string, err error) {
	logrus.WithFields(logrus.Fields{
		"callback": callback,
		"error":    err,
	}).Error("dropping undecodable native event")
}

func dropOrphanEvent(callback string, session uintptr) {
	logrus.WithFields(logrus.Fields{
		"callback": callback,
		"session":  session,
	}).Warn("dropping native event for unknown session")
}

// Event table layouts. Slot order matches the native registration
// structs; every slot this binding supports is populated.

type userEvents struct {
	onCurrentUserUpdate uintptr
}

type activityEvents struct {
	onActivityJoin        uintptr
	onActivitySpectate    uintptr
	onActivityJoinRequest uintptr
	onActivityInvite      uintptr
}

type relationshipEvents struct {
	onRefresh            uintptr
	onRelationshipUpdate uintptr
}

type lobbyEvents struct {
	onLobbyUpdate      uintptr
	onLobbyDelete      uintptr
	onMemberConnect    uintptr
	onMemberUpdate     uintptr
	onMemberDisconnect uintptr
	onLobbyMessage     uintptr
	onSpeaking         uintptr
	onNetworkMessage   uintptr
}

type networkEvents struct {
	onMessage     uintptr
	onRouteUpdate uintptr
}

type overlayEvents struct {
	onToggle uintptr
}

type storeEvents struct {
	onEntitlementCreate uintptr
	onEntitlementDelete uintptr
}

type voiceEvents struct {
	onSettingsUpdate uintptr
}

type achievementEvents struct {
	onUserAchievementUpdate uintptr
}

// The tables themselves. Registered by address in DiscordCreateParams
// and never moved or freed.
var (
	userEventsTable         userEvents
	activityEventsTable     activityEvents
	relationshipEventsTable relationshipEvents
	lobbyEventsTable        lobbyEvents
	networkEventsTable      networkEvents
	overlayEventsTable      overlayEvents
	storeEventsTable        storeEvents
	voiceEventsTable        voiceEvents
	achievementEventsTable  achievementEvents

	eventTablesOnce sync.Once
)

func initEventTables() {
	eventTablesOnce.Do(func() {
		ptr := &ffi.TypePointer
		i64 := &ffi.TypeSint64
		u32 := &ffi.TypeUint32
		u8 := &ffi.TypeUint8
		i32 := &ffi.TypeSint32
		void := &ffi.TypeVoid

		// void (*on_current_user_update)(void* event_data)
		userEventsTable.onCurrentUserUpdate = newClosure("on_current_user_update",
			ffiCurrentUserUpdate, void, ptr)

		// void (*on_activity_join)(void* event_data, const char* secret)
		activityEventsTable.onActivityJoin = newClosure("on_activity_join",
			ffiActivityJoin, void, ptr, ptr)
		// void (*on_activity_spectate)(void* event_data, const char* secret)
		activityEventsTable.onActivitySpectate = newClosure("on_activity_spectate",
			ffiActivitySpectate, void, ptr, ptr)
		// void (*on_activity_join_request)(void* event_data, DiscordUser* user)
		activityEventsTable.onActivityJoinRequest = newClosure("on_activity_join_request",
			ffiActivityJoinRequest, void, ptr, ptr)
		// void (*on_activity_invite)(void* event_data, EDiscordActivityActionType type,
		//     DiscordUser* user, DiscordActivity* activity)
		activityEventsTable.onActivityInvite = newClosure("on_activity_invite",
			ffiActivityInvite, void, ptr, i32, ptr, ptr)

		// void (*on_refresh)(void* event_data)
		relationshipEventsTable.onRefresh = newClosure("on_relationship_refresh",
			ffiRelationshipRefresh, void, ptr)
		// void (*on_relationship_update)(void* event_data, DiscordRelationship*)
		relationshipEventsTable.onRelationshipUpdate = newClosure("on_relationship_update",
			ffiRelationshipUpdate, void, ptr, ptr)

		// void (*on_lobby_update)(void* event_data, int64_t lobby_id)
		lobbyEventsTable.onLobbyUpdate = newClosure("on_lobby_update",
			ffiLobbyUpdate, void, ptr, i64)
		// void (*on_lobby_delete)(void* event_data, int64_t lobby_id, uint32_t reason)
		lobbyEventsTable.onLobbyDelete = newClosure("on_lobby_delete",
			ffiLobbyDelete, void, ptr, i64, u32)
		// void (*on_member_connect)(void* event_data, int64_t lobby_id, int64_t user_id)
		lobbyEventsTable.onMemberConnect = newClosure("on_lobby_member_connect",
			ffiLobbyMemberConnect, void, ptr, i64, i64)
		// void (*on_member_update)(void* event_data, int64_t lobby_id, int64_t user_id)
		lobbyEventsTable.onMemberUpdate = newClosure("on_lobby_member_update",
			ffiLobbyMemberUpdate, void, ptr, i64, i64)
		// void (*on_member_disconnect)(void* event_data, int64_t lobby_id, int64_t user_id)
		lobbyEventsTable.onMemberDisconnect = newClosure("on_lobby_member_disconnect",
			ffiLobbyMemberDisconnect, void, ptr, i64, i64)
		// void (*on_lobby_message)(void* event_data, int64_t lobby_id, int64_t user_id,
		//     uint8_t* data, uint32_t data_length)
		lobbyEventsTable.onLobbyMessage = newClosure("on_lobby_message",
			ffiLobbyMessage, void, ptr, i64, i64, ptr, u32)
		// void (*on_speaking)(void* event_data, int64_t lobby_id, int64_t user_id, bool speaking)
		lobbyEventsTable.onSpeaking = newClosure("on_lobby_speaking",
			ffiLobbySpeaking, void, ptr, i64, i64, u8)
		// void (*on_network_message)(void* event_data, int64_t lobby_id, int64_t user_id,
		//     uint8_t channel_id, uint8_t* data, uint32_t data_length)
		lobbyEventsTable.onNetworkMessage = newClosure("on_lobby_network_message",
			ffiLobbyNetworkMessage, void, ptr, i64, i64, u8, ptr, u32)

		// void (*on_message)(void* event_data, DiscordNetworkPeerId peer_id,
		//     DiscordNetworkChannelId channel_id, uint8_t* data, uint32_t data_length)
		networkEventsTable.onMessage = newClosure("on_network_message",
			ffiNetworkMessage, void, ptr, &ffi.TypeUint64, u8, ptr, u32)
		// void (*on_route_update)(void* event_data, const char* route_data)
		networkEventsTable.onRouteUpdate = newClosure("on_network_route_update",
			ffiNetworkRouteUpdate, void, ptr, ptr)

		// void (*on_toggle)(void* event_data, bool locked)
		overlayEventsTable.onToggle = newClosure("on_overlay_toggle",
			ffiOverlayToggle, void, ptr, u8)

		// void (*on_entitlement_create)(void* event_data, DiscordEntitlement*)
		storeEventsTable.onEntitlementCreate = newClosure("on_entitlement_create",
			ffiEntitlementCreate, void, ptr, ptr)
		// void (*on_entitlement_delete)(void* event_data, DiscordEntitlement*)
		storeEventsTable.onEntitlementDelete = newClosure("on_entitlement_delete",
			ffiEntitlementDelete, void, ptr, ptr)

		// void (*on_settings_update)(void* event_data)
		voiceEventsTable.onSettingsUpdate = newClosure("on_voice_settings_update",
			ffiVoiceSettingsUpdate, void, ptr)

		// void (*on_user_achievement_update)(void* event_data, DiscordUserAchievement*)
		achievementEventsTable.onUserAchievementUpdate = newClosure("on_user_achievement_update",
			ffiUserAchievementUpdate, void, ptr, ptr)
	})
}

// FFI glue: unpack the libffi argument array, then hand off to the
// dispatch function carrying the logic. The split keeps the dispatch
// path testable without native code in the loop.

func argSlice(args *unsafe.Pointer, n int) []unsafe.Pointer {
	return unsafe.Slice(args, n)
}

func ffiCurrentUserUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_current_user_update")
	a := argSlice(args, 1)
	dispatchCurrentUserUpdate(*(*uintptr)(a[0]))
	return 0
}

func ffiActivityJoin(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_activity_join")
	a := argSlice(args, 2)
	dispatchActivityJoin(*(*uintptr)(a[0]), *(**byte)(a[1]))
	return 0
}

func ffiActivitySpectate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_activity_spectate")
	a := argSlice(args, 2)
	dispatchActivitySpectate(*(*uintptr)(a[0]), *(**byte)(a[1]))
	return 0
}

func ffiActivityJoinRequest(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_activity_join_request")
	a := argSlice(args, 2)
	dispatchActivityJoinRequest(*(*uintptr)(a[0]), *(**User)(a[1]))
	return 0
}

func ffiActivityInvite(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_activity_invite")
	a := argSlice(args, 4)
	dispatchActivityInvite(*(*uintptr)(a[0]), *(*int32)(a[1]), *(**User)(a[2]), *(**Activity)(a[3]))
	return 0
}

func ffiRelationshipRefresh(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_relationship_refresh")
	a := argSlice(args, 1)
	dispatchRelationshipRefresh(*(*uintptr)(a[0]))
	return 0
}

func ffiRelationshipUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_relationship_update")
	a := argSlice(args, 2)
	dispatchRelationshipUpdate(*(*uintptr)(a[0]), *(**Relationship)(a[1]))
	return 0
}

func ffiLobbyUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_update")
	a := argSlice(args, 2)
	dispatchLobbyUpdate(*(*uintptr)(a[0]), *(*int64)(a[1]))
	return 0
}

func ffiLobbyDelete(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_delete")
	a := argSlice(args, 3)
	dispatchLobbyDelete(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*uint32)(a[2]))
	return 0
}

func ffiLobbyMemberConnect(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_member_connect")
	a := argSlice(args, 3)
	dispatchLobbyMemberConnect(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]))
	return 0
}

func ffiLobbyMemberUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_member_update")
	a := argSlice(args, 3)
	dispatchLobbyMemberUpdate(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]))
	return 0
}

func ffiLobbyMemberDisconnect(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_member_disconnect")
	a := argSlice(args, 3)
	dispatchLobbyMemberDisconnect(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]))
	return 0
}

func ffiLobbyMessage(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_message")
	a := argSlice(args, 5)
	dispatchLobbyMessage(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]),
		*(**byte)(a[3]), *(*uint32)(a[4]))
	return 0
}

func ffiLobbySpeaking(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_speaking")
	a := argSlice(args, 4)
	dispatchLobbySpeaking(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]),
		*(*uint8)(a[3]) != 0)
	return 0
}

func ffiLobbyNetworkMessage(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_lobby_network_message")
	a := argSlice(args, 6)
	dispatchLobbyNetworkMessage(*(*uintptr)(a[0]), *(*int64)(a[1]), *(*int64)(a[2]),
		*(*uint8)(a[3]), *(**byte)(a[4]), *(*uint32)(a[5]))
	return 0
}

func ffiNetworkMessage(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_network_message")
	a := argSlice(args, 5)
	dispatchNetworkMessage(*(*uintptr)(a[0]), *(*uint64)(a[1]), *(*uint8)(a[2]),
		*(**byte)(a[3]), *(*uint32)(a[4]))
	return 0
}

func ffiNetworkRouteUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_network_route_update")
	a := argSlice(args, 2)
	dispatchNetworkRouteUpdate(*(*uintptr)(a[0]), *(**byte)(a[1]))
	return 0
}

func ffiOverlayToggle(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_overlay_toggle")
	a := argSlice(args, 2)
	dispatchOverlayToggle(*(*uintptr)(a[0]), *(*uint8)(a[1]) != 0)
	return 0
}

func ffiEntitlementCreate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_entitlement_create")
	a := argSlice(args, 2)
	dispatchEntitlementCreate(*(*uintptr)(a[0]), *(**Entitlement)(a[1]))
	return 0
}

func ffiEntitlementDelete(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_entitlement_delete")
	a := argSlice(args, 2)
	dispatchEntitlementDelete(*(*uintptr)(a[0]), *(**Entitlement)(a[1]))
	return 0
}

func ffiVoiceSettingsUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_voice_settings_update")
	a := argSlice(args, 1)
	dispatchVoiceSettingsUpdate(*(*uintptr)(a[0]))
	return 0
}

func ffiUserAchievementUpdate(_ *ffi.Cif, _ unsafe.Pointer, args *unsafe.Pointer, _ unsafe.Pointer) uintptr {
	defer recoverGuard("on_user_achievement_update")
	a := argSlice(args, 2)
	dispatchUserAchievementUpdate(*(*uintptr)(a[0]), *(**UserAchievement)(a[1]))
	return 0
}

// Dispatch functions: owner recovery, raw -> owned conversion, handler
// fan-out. Struct pointers are copied by value before the function
// returns; C strings are decoded to owned Go strings or the whole
// occurrence is dropped.

func dispatchCurrentUserUpdate(session uintptr) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_current_user_update", session)
		return
	}
	h.OnCurrentUserUpdate()
}

func dispatchActivityJoin(session uintptr, secret *byte) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_activity_join", session)
		return
	}
	s, err := DecodeCString(secret)
	if err != nil {
		dropEvent("on_activity_join", err)
		return
	}
	h.OnActivityJoin(s)
}

func dispatchActivitySpectate(session uintptr, secret *byte) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_activity_spectate", session)
		return
	}
	s, err := DecodeCString(secret)
	if err != nil {
		dropEvent("on_activity_spectate", err)
		return
	}
	h.OnActivitySpectate(s)
}

func dispatchActivityJoinRequest(session uintptr, user *User) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_activity_join_request", session)
		return
	}
	if user == nil {
		dropEvent("on_activity_join_request", ErrNilPointer)
		return
	}
	h.OnActivityJoinRequest(*user)
}

func dispatchActivityInvite(session uintptr, kind int32, user *User, activity *Activity) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_activity_invite", session)
		return
	}
	if user == nil || activity == nil {
		dropEvent("on_activity_invite", ErrNilPointer)
		return
	}
	h.OnActivityInvite(kind, *user, *activity)
}

func dispatchRelationshipRefresh(session uintptr) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_relationship_refresh", session)
		return
	}
	h.OnRelationshipRefresh()
}

func dispatchRelationshipUpdate(session uintptr, relationship *Relationship) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_relationship_update", session)
		return
	}
	if relationship == nil {
		dropEvent("on_relationship_update", ErrNilPointer)
		return
	}
	h.OnRelationshipUpdate(*relationship)
}

func dispatchLobbyUpdate(session uintptr, lobbyID int64) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_update", session)
		return
	}
	h.OnLobbyUpdate(lobbyID)
}

func dispatchLobbyDelete(session uintptr, lobbyID int64, reason uint32) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_delete", session)
		return
	}
	h.OnLobbyDelete(lobbyID, reason)
}

func dispatchLobbyMemberConnect(session uintptr, lobbyID, userID int64) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_member_connect", session)
		return
	}
	h.OnLobbyMemberConnect(lobbyID, userID)
}

func dispatchLobbyMemberUpdate(session uintptr, lobbyID, userID int64) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_member_update", session)
		return
	}
	h.OnLobbyMemberUpdate(lobbyID, userID)
}

func dispatchLobbyMemberDisconnect(session uintptr, lobbyID, userID int64) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_member_disconnect", session)
		return
	}
	h.OnLobbyMemberDisconnect(lobbyID, userID)
}

func dispatchLobbyMessage(session uintptr, lobbyID, userID int64, data *byte, length uint32) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_message", session)
		return
	}
	h.OnLobbyMessage(lobbyID, userID, cloneBytes(data, length))
}

func dispatchLobbySpeaking(session uintptr, lobbyID, userID int64, speaking bool) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_speaking", session)
		return
	}
	h.OnLobbySpeaking(lobbyID, userID, speaking)
}

func dispatchLobbyNetworkMessage(session uintptr, lobbyID, userID int64, channelID uint8, data *byte, length uint32) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_lobby_network_message", session)
		return
	}
	h.OnLobbyNetworkMessage(lobbyID, userID, channelID, cloneBytes(data, length))
}

func dispatchNetworkMessage(session uintptr, peerID uint64, channelID uint8, data *byte, length uint32) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_network_message", session)
		return
	}
	h.OnNetworkMessage(peerID, channelID, cloneBytes(data, length))
}

func dispatchNetworkRouteUpdate(session uintptr, route *byte) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_network_route_update", session)
		return
	}
	s, err := DecodeCString(route)
	if err != nil {
		dropEvent("on_network_route_update", err)
		return
	}
	h.OnNetworkRouteUpdate(s)
}

func dispatchOverlayToggle(session uintptr, locked bool) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_overlay_toggle", session)
		return
	}
	h.OnOverlayToggle(locked)
}

func dispatchEntitlementCreate(session uintptr, entitlement *Entitlement) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_entitlement_create", session)
		return
	}
	if entitlement == nil {
		dropEvent("on_entitlement_create", ErrNilPointer)
		return
	}
	h.OnEntitlementCreate(*entitlement)
}

func dispatchEntitlementDelete(session uintptr, entitlement *Entitlement) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_entitlement_delete", session)
		return
	}
	if entitlement == nil {
		dropEvent("on_entitlement_delete", ErrNilPointer)
		return
	}
	h.OnEntitlementDelete(*entitlement)
}

func dispatchVoiceSettingsUpdate(session uintptr) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_voice_settings_update", session)
		return
	}
	h.OnVoiceSettingsUpdate()
}

func dispatchUserAchievementUpdate(session uintptr, achievement *UserAchievement) {
	h := sessionHandler(session)
	if h == nil {
		dropOrphanEvent("on_user_achievement_update", session)
		return
	}
	if achievement == nil {
		dropEvent("on_user_achievement_update", ErrNilPointer)
		return
	}
	h.OnUserAchievementUpdate(*achievement)
}
