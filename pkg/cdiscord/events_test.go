/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"testing"
)

// nopHandler satisfies EventHandler so tests can override only the
// callbacks they care about.
type nopHandler struct{}

func (nopHandler) OnCurrentUserUpdate()                                {}
func (nopHandler) OnActivityJoin(string)                               {}
func (nopHandler) OnActivitySpectate(string)                           {}
func (nopHandler) OnActivityJoinRequest(User)                          {}
func (nopHandler) OnActivityInvite(int32, User, Activity)              {}
func (nopHandler) OnRelationshipRefresh()                              {}
func (nopHandler) OnRelationshipUpdate(Relationship)                   {}
func (nopHandler) OnLobbyUpdate(int64)                                 {}
func (nopHandler) OnLobbyDelete(int64, uint32)                         {}
func (nopHandler) OnLobbyMemberConnect(int64, int64)                   {}
func (nopHandler) OnLobbyMemberUpdate(int64, int64)                    {}
func (nopHandler) OnLobbyMemberDisconnect(int64, int64)                {}
func (nopHandler) OnLobbyMessage(int64, int64, []byte)                 {}
func (nopHandler) OnLobbySpeaking(int64, int64, bool)                  {}
func (nopHandler) OnLobbyNetworkMessage(int64, int64, uint8, []byte)   {}
func (nopHandler) OnNetworkMessage(uint64, uint8, []byte)              {}
func (nopHandler) OnNetworkRouteUpdate(string)                         {}
func (nopHandler) OnOverlayToggle(bool)                                {}
func (nopHandler) OnEntitlementCreate(Entitlement)                     {}
func (nopHandler) OnEntitlementDelete(Entitlement)                     {}
func (nopHandler) OnVoiceSettingsUpdate()                              {}
func (nopHandler) OnUserAchievementUpdate(UserAchievement)             {}

type recordingHandler struct {
	nopHandler
	joins        []string
	users        []User
	messages     [][]byte
	speaking     []bool
	voiceUpdates int
}

func (h *recordingHandler) OnActivityJoin(secret string)  { h.joins = append(h.joins, secret) }
func (h *recordingHandler) OnActivityJoinRequest(u User)  { h.users = append(h.users, u) }
func (h *recordingHandler) OnVoiceSettingsUpdate()        { h.voiceUpdates++ }
func (h *recordingHandler) OnLobbySpeaking(_, _ int64, s bool) {
	h.speaking = append(h.speaking, s)
}
func (h *recordingHandler) OnLobbyMessage(_, _ int64, data []byte) {
	h.messages = append(h.messages, data)
}

func newTestSession(t *testing.T) (*recordingHandler, uintptr) {
	t.Helper()
	h := &recordingHandler{}
	id := registerSession(h)
	t.Cleanup(func() { unregisterSession(id) })
	return h, id
}

func TestDispatchActivityJoin(t *testing.T) {
	h, id := newTestSession(t)

	secret := []byte("join-me\x00")
	dispatchActivityJoin(id, &secret[0])

	if len(h.joins) != 1 || h.joins[0] != "join-me" {
		t.Errorf("joins = %v", h.joins)
	}
}

func TestDispatchInvalidTextDropped(t *testing.T) {
	h, id := newTestSession(t)

	secret := []byte{0xFF, 0xFE, 0x00}
	dispatchActivityJoin(id, &secret[0])

	if len(h.joins) != 0 {
		t.Errorf("malformed secret was delivered: %v", h.joins)
	}
}

func TestDispatchNilSecretDropped(t *testing.T) {
	h, id := newTestSession(t)

	dispatchActivityJoin(id, nil)

	if len(h.joins) != 0 {
		t.Errorf("nil secret was delivered: %v", h.joins)
	}
}

func TestDispatchUnknownSession(t *testing.T) {
	// A callback landing after unregisterSession must be dropped, not
	// crash or reach another session's handler.
	h := &recordingHandler{}
	id := registerSession(h)
	unregisterSession(id)

	secret := []byte("late\x00")
	dispatchActivityJoin(id, &secret[0])

	if len(h.joins) != 0 {
		t.Errorf("dead session received an event: %v", h.joins)
	}
}

func TestDispatchJoinRequestCopiesUser(t *testing.T) {
	h, id := newTestSession(t)

	raw := User{ID: 7}
	copy(raw.Username[:], "asker")
	dispatchActivityJoinRequest(id, &raw)

	// Mutating the source afterwards must not affect the delivered copy.
	raw.ID = 99
	if len(h.users) != 1 || h.users[0].ID != 7 {
		t.Errorf("users = %+v", h.users)
	}
}

func TestDispatchLobbyMessageOrderAndOwnership(t *testing.T) {
	h, id := newTestSession(t)

	first := []byte("first")
	second := []byte("second")
	dispatchLobbyMessage(id, 1, 2, &first[0], uint32(len(first)))
	dispatchLobbyMessage(id, 1, 2, &second[0], uint32(len(second)))
	first[0] = 'X'

	if len(h.messages) != 2 {
		t.Fatalf("got %d messages", len(h.messages))
	}
	if string(h.messages[0]) != "first" || string(h.messages[1]) != "second" {
		t.Errorf("messages = %q", h.messages)
	}
}

func TestDispatchSpeakingSequence(t *testing.T) {
	// The talk/stop pattern of a voice channel: per-kind order is what
	// consumers rely on to pair start and stop.
	h, id := newTestSession(t)

	dispatchLobbySpeaking(id, 1, 2, true)
	dispatchVoiceSettingsUpdate(id)
	dispatchLobbySpeaking(id, 1, 2, false)

	want := []bool{true, false}
	if len(h.speaking) != 2 || h.speaking[0] != want[0] || h.speaking[1] != want[1] {
		t.Errorf("speaking = %v", h.speaking)
	}
	if h.voiceUpdates != 1 {
		t.Errorf("voiceUpdates = %d", h.voiceUpdates)
	}
}

func TestSessionsIsolated(t *testing.T) {
	a, idA := newTestSession(t)
	b, idB := newTestSession(t)

	secret := []byte("only-a\x00")
	dispatchActivityJoin(idA, &secret[0])

	if len(a.joins) != 1 {
		t.Errorf("session A joins = %v", a.joins)
	}
	if len(b.joins) != 0 {
		t.Errorf("session B received A's event: %v", b.joins)
	}
	_ = idB
}
