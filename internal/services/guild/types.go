package guild

import (
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	"github.com/rs/zerolog"
)

// Config holds configuration for the guild service
type Config struct {
	GuildRepo guildRepo.Repository
	Logger    zerolog.Logger
}

// SetAlarmInput contains parameters for arming or disarming the alarm
type SetAlarmInput struct {
	GuildID int64
	Armed   bool
}

// SetChannelInput contains parameters for choosing the alarm channel
type SetChannelInput struct {
	GuildID   int64
	ChannelID int64
}

// SetGameInput contains parameters for choosing the tracked game
type SetGameInput struct {
	GuildID      int64
	ActivityName string
}

// GetSettingsInput identifies the guild
type GetSettingsInput struct {
	GuildID int64
}
