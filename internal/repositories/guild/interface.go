package guild

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/judgebot/internal/repositories/guild Repository

import (
	"context"

	"github.com/KirkDiggler/judgebot/internal/models"
)

// Repository defines persistence for per-guild settings.
// Reading a guild nobody configured returns defaults, never an error.
type Repository interface {
	// GetSettings returns the guild's settings with defaults for unset values
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error)

	// SetAlarmArmed stores the alarm armed flag
	SetAlarmArmed(ctx context.Context, input *SetAlarmArmedInput) error

	// SetAlarmChannel stores the alarm notification channel
	SetAlarmChannel(ctx context.Context, input *SetAlarmChannelInput) error

	// SetTrackedGame stores the guild's tracked activity name
	SetTrackedGame(ctx context.Context, input *SetTrackedGameInput) error
}
