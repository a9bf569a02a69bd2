/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import "strconv"

// Result is the native EDiscordResult status code. Zero is success;
// every other value is one of a closed set of failures. A Result never
// travels past the point where a call or completion is observed: sync
// wrappers and completion trampolines convert it with Err immediately.
type Result int32

const (
	ResultOk Result = iota
	ResultServiceUnavailable
	ResultInvalidVersion
	ResultLockFailed
	ResultInternalError
	ResultInvalidPayload
	ResultInvalidCommand
	ResultInvalidPermissions
	ResultNotFetched
	ResultNotFound
	ResultConflict
	ResultInvalidSecret
	ResultInvalidJoinSecret
	ResultNoEligibleActivity
	ResultInvalidInvite
	ResultNotAuthenticated
	ResultInvalidAccessToken
	ResultApplicationMismatch
	ResultInvalidDataURL
	ResultInvalidBase64
	ResultNotFiltered
	ResultLobbyFull
	ResultInvalidLobbySecret
	ResultInvalidFilename
	ResultInvalidFileSize
	ResultInvalidEntitlement
	ResultNotInstalled
	ResultNotRunning
	ResultInsufficientBuffer
	ResultPurchaseCanceled
	ResultInvalidGuild
	ResultInvalidEvent
	ResultInvalidChannel
	ResultInvalidOrigin
	ResultRateLimited
	ResultOAuth2Error
	ResultSelectChannelTimeout
	ResultGetGuildTimeout
	ResultSelectVoiceForceRequired
	ResultCaptureShortcutAlreadyListening
	ResultUnauthorizedForAchievement
	ResultInvalidGiftCode
	ResultPurchaseError
	ResultTransactionAborted
)

var resultNames = map[Result]string{
	ResultOk:                              "ok",
	ResultServiceUnavailable:              "service unavailable",
	ResultInvalidVersion:                  "invalid version",
	ResultLockFailed:                      "lock failed",
	ResultInternalError:                   "internal error",
	ResultInvalidPayload:                  "invalid payload",
	ResultInvalidCommand:                  "invalid command",
	ResultInvalidPermissions:              "invalid permissions",
	ResultNotFetched:                      "not fetched",
	ResultNotFound:                        "not found",
	ResultConflict:                        "conflict",
	ResultInvalidSecret:                   "invalid secret",
	ResultInvalidJoinSecret:               "invalid join secret",
	ResultNoEligibleActivity:              "no eligible activity",
	ResultInvalidInvite:                   "invalid invite",
	ResultNotAuthenticated:                "not authenticated",
	ResultInvalidAccessToken:              "invalid access token",
	ResultApplicationMismatch:             "application mismatch",
	ResultInvalidDataURL:                  "invalid data url",
	ResultInvalidBase64:                   "invalid base64",
	ResultNotFiltered:                     "not filtered",
	ResultLobbyFull:                       "lobby full",
	ResultInvalidLobbySecret:              "invalid lobby secret",
	ResultInvalidFilename:                 "invalid filename",
	ResultInvalidFileSize:                 "invalid file size",
	ResultInvalidEntitlement:              "invalid entitlement",
	ResultNotInstalled:                    "not installed",
	ResultNotRunning:                      "not running",
	ResultInsufficientBuffer:              "insufficient buffer",
	ResultPurchaseCanceled:                "purchase canceled",
	ResultInvalidGuild:                    "invalid guild",
	ResultInvalidEvent:                    "invalid event",
	ResultInvalidChannel:                  "invalid channel",
	ResultInvalidOrigin:                   "invalid origin",
	ResultRateLimited:                     "rate limited",
	ResultOAuth2Error:                     "oauth2 error",
	ResultSelectChannelTimeout:            "select channel timeout",
	ResultGetGuildTimeout:                 "get guild timeout",
	ResultSelectVoiceForceRequired:        "select voice force required",
	ResultCaptureShortcutAlreadyListening: "capture shortcut already listening",
	ResultUnauthorizedForAchievement:      "unauthorized for achievement",
	ResultInvalidGiftCode:                 "invalid gift code",
	ResultPurchaseError:                   "purchase error",
	ResultTransactionAborted:              "transaction aborted",
}

// Error implements the error interface. Only non-Ok values are ever
// returned as errors; see Err.
func (r Result) Error() string {
	if name, ok := resultNames[r]; ok {
		return "discord: " + name
	}
	return "discord: result " + strconv.Itoa(int(r))
}

// Err maps the status code to a Go error: nil for Ok, the typed Result
// otherwise. Callers can compare with errors.Is against the Result
// constants.
func (r Result) Err() error {
	if r == ResultOk {
		return nil
	}
	return r
}
