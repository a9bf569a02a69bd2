/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "github.com/crrow/discordsdk-go/pkg/cdiscord"

// OverlayEnabled reports whether the user has the overlay enabled.
func (d *Discord) OverlayEnabled() (bool, error) {
	return d.core.OverlayEnabled()
}

// OverlayLocked reports whether the overlay is currently locked.
func (d *Discord) OverlayLocked() (bool, error) {
	return d.core.OverlayLocked()
}

// OverlaySetLocked locks or unlocks the overlay.
func (d *Discord) OverlaySetLocked(locked bool, cb func(error)) error {
	return d.core.OverlaySetLocked(locked, cdiscord.Completion(cb))
}

// OverlayOpenActivityInvite opens the overlay invite modal for the
// current activity. The activity must have the matching secret set.
func (d *Discord) OverlayOpenActivityInvite(action ActivityAction, cb func(error)) error {
	return d.core.OverlayOpenActivityInvite(action, cdiscord.Completion(cb))
}

// OverlayOpenGuildInvite opens the overlay join modal for a server
// invite code.
func (d *Discord) OverlayOpenGuildInvite(code string, cb func(error)) error {
	return d.core.OverlayOpenGuildInvite(code, cdiscord.Completion(cb))
}

// OverlayOpenVoiceSettings opens the overlay voice settings panel.
func (d *Discord) OverlayOpenVoiceSettings(cb func(error)) error {
	return d.core.OverlayOpenVoiceSettings(cdiscord.Completion(cb))
}
