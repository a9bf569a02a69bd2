/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// VoiceInputMode returns the current voice capture mode.
func (d *Discord) VoiceInputMode() (InputMode, error) {
	raw, err := d.core.VoiceInputMode()
	if err != nil {
		return InputMode{}, err
	}
	return decodeInputMode(raw)
}

// VoiceSetInputMode changes the voice capture mode. A shortcut that
// does not fit its wire buffer fails here, before anything reaches the
// SDK. cb fires exactly once with the outcome.
func (d *Discord) VoiceSetInputMode(mode InputMode, cb func(error)) error {
	raw, err := encodeInputMode(mode)
	if err != nil {
		return err
	}
	return d.core.VoiceSetInputMode(raw, cdiscord.Completion(cb))
}

// VoiceSelfMute reports whether the connected user muted themselves.
func (d *Discord) VoiceSelfMute() (bool, error) {
	return d.core.VoiceSelfMute()
}

// VoiceSetSelfMute mutes or unmutes the connected user.
func (d *Discord) VoiceSetSelfMute(mute bool) error {
	return d.core.VoiceSetSelfMute(mute)
}

// VoiceSelfDeaf reports whether the connected user deafened themselves.
func (d *Discord) VoiceSelfDeaf() (bool, error) {
	return d.core.VoiceSelfDeaf()
}

// VoiceSetSelfDeaf deafens or undeafens the connected user.
func (d *Discord) VoiceSetSelfDeaf(deaf bool) error {
	return d.core.VoiceSetSelfDeaf(deaf)
}

// VoiceLocalMute reports whether userID is muted locally.
func (d *Discord) VoiceLocalMute(userID int64) (bool, error) {
	return d.core.VoiceLocalMute(userID)
}

// VoiceSetLocalMute mutes or unmutes userID locally, for this client
// only.
func (d *Discord) VoiceSetLocalMute(userID int64, mute bool) error {
	return d.core.VoiceSetLocalMute(userID, mute)
}

// VoiceLocalVolume returns the local playback volume for userID,
// 0 to 200 with 100 meaning unmodified.
func (d *Discord) VoiceLocalVolume(userID int64) (uint8, error) {
	return d.core.VoiceLocalVolume(userID)
}

// VoiceSetLocalVolume sets the local playback volume for userID.
func (d *Discord) VoiceSetLocalVolume(userID int64, volume uint8) error {
	return d.core.VoiceSetLocalVolume(userID, volume)
}
