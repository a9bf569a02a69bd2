/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// ActivityAction selects which invite flavor is being sent or opened.
type ActivityAction = cdiscord.ActivityActionType

const (
	ActionJoin     = cdiscord.ActivityActionJoin
	ActionSpectate = cdiscord.ActivityActionSpectate
)

// JoinReply is the answer to an incoming ask-to-join request.
type JoinReply = cdiscord.JoinRequestReply

const (
	ReplyNo     = cdiscord.JoinRequestNo
	ReplyYes    = cdiscord.JoinRequestYes
	ReplyIgnore = cdiscord.JoinRequestIgnore
)

// RegisterCommand registers the command Discord uses to launch the
// game when a user joins from an invite.
func (d *Discord) RegisterCommand(command string) error {
	return d.core.RegisterCommand(command)
}

// RegisterSteam registers the game's Steam app ID for launching.
func (d *Discord) RegisterSteam(steamID uint32) error {
	return d.core.RegisterSteam(steamID)
}

// UpdateActivity publishes activity as the user's rich presence. Text
// fields that do not fit their wire buffers fail here, before anything
// reaches the SDK. cb fires exactly once with the outcome.
func (d *Discord) UpdateActivity(activity Activity, cb func(error)) error {
	raw, err := encodeActivity(activity)
	if err != nil {
		return err
	}
	return d.core.UpdateActivity(&raw, cdiscord.Completion(cb))
}

// ClearActivity removes the published rich presence.
func (d *Discord) ClearActivity(cb func(error)) error {
	return d.core.ClearActivity(cdiscord.Completion(cb))
}

// SendRequestReply answers an ask-to-join request from userID.
func (d *Discord) SendRequestReply(userID int64, reply JoinReply, cb func(error)) error {
	return d.core.SendRequestReply(userID, reply, cdiscord.Completion(cb))
}

// SendInvite invites userID to join or spectate, with content as the
// message shown alongside the invite.
func (d *Discord) SendInvite(userID int64, action ActivityAction, content string, cb func(error)) error {
	return d.core.SendInvite(userID, action, content, cdiscord.Completion(cb))
}

// AcceptInvite accepts a pending activity invite from userID.
func (d *Discord) AcceptInvite(userID int64, cb func(error)) error {
	return d.core.AcceptInvite(userID, cdiscord.Completion(cb))
}
