package tracker

import (
	"github.com/KirkDiggler/judgebot/internal/common/clock"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	"github.com/rs/zerolog"
)

// Config holds configuration for the tracker service
type Config struct {
	// TrackedActivity is matched exactly against activity names, across all guilds
	TrackedActivity string

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	AlarmService alarm.Service
	Clock        clock.Clock

	Logger zerolog.Logger
}

// IgnoreReason explains why an event did not change state
type IgnoreReason string

const (
	IgnoreReasonNone           IgnoreReason = ""
	IgnoreReasonBot            IgnoreReason = "bot"
	IgnoreReasonOtherActivity  IgnoreReason = "other_activity"
	IgnoreReasonAlreadyPlaying IgnoreReason = "already_playing"
	IgnoreReasonNotPlaying     IgnoreReason = "not_playing"
)

// ActivityStartedInput is an activity-start notification from the gateway
type ActivityStartedInput struct {
	UserID       int64
	GuildID      int64
	UserName     string
	ActivityName string
	IsBot        bool
}

// ActivityStartedOutput contains the result of an activity start
type ActivityStartedOutput struct {
	// Opened is true when the user moved from idle to playing
	Opened bool

	// Ignored explains why nothing changed
	Ignored IgnoreReason

	// StartedAt is the open session's start in epoch seconds
	StartedAt int64

	// Notified is true when the alarm delivered a message
	Notified bool
}

// ActivityEndedInput is an activity-end notification from the gateway
type ActivityEndedInput struct {
	UserID       int64
	ActivityName string
	IsBot        bool
}

// ActivityEndedOutput contains the result of an activity end
type ActivityEndedOutput struct {
	// Closed is true when the user moved from playing to idle
	Closed bool

	// Ignored explains why nothing changed
	Ignored IgnoreReason

	// ElapsedSeconds is the duration added to the lifetime total
	ElapsedSeconds int64

	// LifetimeSeconds is the lifetime total after the session closed
	LifetimeSeconds int64
}
