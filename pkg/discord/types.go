/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "time"

// User is a decoded Discord user profile.
type User struct {
	ID            int64
	Username      string
	Discriminator string
	Avatar        string
	Bot           bool
}

// ActivityKind distinguishes what the rich presence describes.
type ActivityKind int32

const (
	ActivityPlaying   ActivityKind = 0
	ActivityStreaming ActivityKind = 1
	ActivityListening ActivityKind = 2
	ActivityWatching  ActivityKind = 3
)

// Timestamps are the start and end of the current activity. A zero
// time means the bound is unset.
type Timestamps struct {
	Start time.Time
	End   time.Time
}

// Assets are the artwork keys and hover texts shown with an activity.
type Assets struct {
	LargeImage string
	LargeText  string
	SmallImage string
	SmallText  string
}

// Party describes the group the user is playing in.
type Party struct {
	ID          string
	CurrentSize int32
	MaxSize     int32
}

// Secrets are the opaque tokens other clients use to join or spectate.
type Secrets struct {
	Match    string
	Join     string
	Spectate string
}

// Activity is a decoded rich presence payload.
type Activity struct {
	Kind          ActivityKind
	ApplicationID int64
	Name          string
	State         string
	Details       string
	Timestamps    Timestamps
	Assets        Assets
	Party         Party
	Secrets       Secrets
	Instance      bool
}

// Status is a user's online status.
type Status int32

const (
	StatusOffline      Status = 0
	StatusOnline       Status = 1
	StatusIdle         Status = 2
	StatusDoNotDisturb Status = 3
)

// Presence is another user's status plus their current activity.
type Presence struct {
	Status   Status
	Activity Activity
}

// RelationshipKind classifies how the current user relates to another.
type RelationshipKind int32

const (
	RelationshipNone            RelationshipKind = 0
	RelationshipFriend          RelationshipKind = 1
	RelationshipBlocked         RelationshipKind = 2
	RelationshipPendingIncoming RelationshipKind = 3
	RelationshipPendingOutgoing RelationshipKind = 4
	RelationshipImplicit        RelationshipKind = 5
)

// Relationship links the current user to another user.
type Relationship struct {
	Kind     RelationshipKind
	User     User
	Presence Presence
}

// UserAchievement is a user's progress on one achievement.
type UserAchievement struct {
	UserID          int64
	AchievementID   int64
	PercentComplete uint8
	UnlockedAt      string
}

// EntitlementKind classifies how an entitlement was obtained.
type EntitlementKind int32

const (
	EntitlementPurchase            EntitlementKind = 1
	EntitlementPremiumSubscription EntitlementKind = 2
	EntitlementDeveloperGift       EntitlementKind = 3
	EntitlementTestModePurchase    EntitlementKind = 4
	EntitlementFreePurchase        EntitlementKind = 5
	EntitlementUserGift            EntitlementKind = 6
	EntitlementPremiumPurchase     EntitlementKind = 7
)

// Entitlement is the user's right to a SKU.
type Entitlement struct {
	ID    int64
	Kind  EntitlementKind
	SkuID int64
}

// FileStat is metadata for one value in SDK-managed storage.
type FileStat struct {
	Filename     string
	Size         uint64
	LastModified time.Time
}

// InputModeKind selects how voice capture is triggered.
type InputModeKind int32

const (
	InputVoiceActivity InputModeKind = 0
	InputPushToTalk    InputModeKind = 1
)

// InputMode is the voice capture configuration.
type InputMode struct {
	Kind     InputModeKind
	Shortcut string
}
