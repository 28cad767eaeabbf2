package models

// GuildSettings is the per-guild configuration. A zero value is the
// configuration of a guild nobody has configured yet.
type GuildSettings struct {
	// GuildID is the Discord guild these settings belong to
	GuildID int64

	// TrackedGame is the activity name set for the guild, empty when unset
	TrackedGame string

	// AlarmArmed enables notifications when a session opens
	AlarmArmed bool

	// AlarmChannelID is where notifications go, zero when unset
	AlarmChannelID int64
}

// HasAlarmChannel reports whether an alarm channel was configured
func (g *GuildSettings) HasAlarmChannel() bool {
	return g.AlarmChannelID != 0
}

// HasTrackedGame reports whether a tracked game was configured
func (g *GuildSettings) HasTrackedGame() bool {
	return g.TrackedGame != ""
}
