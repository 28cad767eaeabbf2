package guild

// GetSettingsInput contains parameters for reading guild settings
type GetSettingsInput struct {
	GuildID int64
}

// SetAlarmArmedInput contains parameters for arming or disarming the alarm
type SetAlarmArmedInput struct {
	GuildID int64
	Armed   bool
}

// SetAlarmChannelInput contains parameters for setting the alarm channel
type SetAlarmChannelInput struct {
	GuildID   int64
	ChannelID int64
}

// SetTrackedGameInput contains parameters for setting the tracked game
type SetTrackedGameInput struct {
	GuildID      int64
	ActivityName string
}
