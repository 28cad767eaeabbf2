package alarm

import (
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	"github.com/rs/zerolog"
)

// Config holds configuration for the alarm service
type Config struct {
	// Repository dependencies
	GuildRepo guildRepo.Repository

	// Sender delivers the notification
	Sender Sender

	Logger zerolog.Logger
}

// SkipReason explains why no notification was sent
type SkipReason string

const (
	SkipReasonNone      SkipReason = ""
	SkipReasonDisarmed  SkipReason = "disarmed"
	SkipReasonNoChannel SkipReason = "no_channel"
)

// MaybeNotifyInput contains the session that just opened
type MaybeNotifyInput struct {
	GuildID int64
	UserID  int64

	// UserName is used in the notification text, falls back to a mention
	UserName string

	// ActivityName is the activity that started
	ActivityName string
}

// MaybeNotifyOutput contains the result of a notification attempt
type MaybeNotifyOutput struct {
	// Sent is true when exactly one message was delivered
	Sent bool

	// ChannelID is the channel the message went to
	ChannelID int64

	// Skipped explains why nothing was sent
	Skipped SkipReason
}

// SendChannelMessageInput contains a message for a channel
type SendChannelMessageInput struct {
	ChannelID int64
	Content   string
}
