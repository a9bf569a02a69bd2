/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

// Struct layouts in this file mirror the native header byte for byte.
// Fields keep their C types (fixed byte arrays for strings, int32 for
// enums) because these structs cross the FFI boundary by address; the
// owned, decoded projections live in pkg/discord.

// Interface version passed to DiscordCreate.
const createVersion int32 = 3

// Per-manager interface versions registered through DiscordCreateParams.
const (
	applicationVersion  int32 = 1
	userVersion         int32 = 1
	imageVersion        int32 = 1
	activityVersion     int32 = 1
	relationshipVersion int32 = 1
	lobbyVersion        int32 = 1
	networkVersion      int32 = 1
	overlayVersion      int32 = 2
	storageVersion      int32 = 1
	storeVersion        int32 = 1
	voiceVersion        int32 = 1
	achievementVersion  int32 = 1
)

// Fixed string-field capacities from the native layout. Each charbuf is
// decoded and encoded with exactly its own capacity; see charbuf.go.
const (
	UsernameCap      = 256
	DiscriminatorCap = 8
	AvatarCap        = 128
	ActivityTextCap  = 128
	PartyIDCap       = 128
	SecretCap        = 128
	UnlockedAtCap    = 64
	FilenameCap      = 260
	ShortcutCap      = 256
	PathCap          = 4096
)

// CreateFlags controls session creation behavior.
type CreateFlags uint64

const (
	CreateDefault          CreateFlags = 0
	CreateNoRequireDiscord CreateFlags = 1
)

// LogLevel is the native log severity passed to the log hook.
type LogLevel int32

const (
	LogLevelError LogLevel = iota + 1
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// User mirrors struct DiscordUser.
type User struct {
	ID            int64
	Username      [UsernameCap]byte
	Discriminator [DiscriminatorCap]byte
	Avatar        [AvatarCap]byte
	Bot           bool
}

// ActivityTimestamps mirrors struct DiscordActivityTimestamps.
type ActivityTimestamps struct {
	Start int64
	End   int64
}

// ActivityAssets mirrors struct DiscordActivityAssets.
type ActivityAssets struct {
	LargeImage [ActivityTextCap]byte
	LargeText  [ActivityTextCap]byte
	SmallImage [ActivityTextCap]byte
	SmallText  [ActivityTextCap]byte
}

// PartySize mirrors struct DiscordPartySize.
type PartySize struct {
	CurrentSize int32
	MaxSize     int32
}

// ActivityParty mirrors struct DiscordActivityParty.
type ActivityParty struct {
	ID   [PartyIDCap]byte
	Size PartySize
}

// ActivitySecrets mirrors struct DiscordActivitySecrets.
type ActivitySecrets struct {
	Match    [SecretCap]byte
	Join     [SecretCap]byte
	Spectate [SecretCap]byte
}

// Activity mirrors struct DiscordActivity.
type Activity struct {
	Kind          int32 // EDiscordActivityType
	ApplicationID int64
	Name          [ActivityTextCap]byte
	State         [ActivityTextCap]byte
	Details       [ActivityTextCap]byte
	Timestamps    ActivityTimestamps
	Assets        ActivityAssets
	Party         ActivityParty
	Secrets       ActivitySecrets
	Instance      bool
}

// UserAchievement mirrors struct DiscordUserAchievement.
type UserAchievement struct {
	UserID          int64
	AchievementID   int64
	PercentComplete uint8
	UnlockedAt      [UnlockedAtCap]byte
}

// FileStat mirrors struct DiscordFileStat.
type FileStat struct {
	Filename     [FilenameCap]byte
	Size         uint64
	LastModified uint64
}

// InputMode mirrors struct DiscordInputMode.
type InputMode struct {
	Kind     int32 // EDiscordInputModeType
	Shortcut [ShortcutCap]byte
}

// Entitlement mirrors struct DiscordEntitlement.
type Entitlement struct {
	ID    int64
	Kind  int32 // EDiscordEntitlementType
	SkuID int64
}

// Presence mirrors struct DiscordPresence.
type Presence struct {
	Status   int32 // EDiscordStatus
	Activity Activity
}

// Relationship mirrors struct DiscordRelationship.
type Relationship struct {
	Kind     int32 // EDiscordRelationshipType
	User     User
	Presence Presence
}
