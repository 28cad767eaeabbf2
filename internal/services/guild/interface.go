package guild

import (
	"context"

	"github.com/KirkDiggler/judgebot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/judgebot/internal/services/guild Service

// Service handles per-guild configuration commands
type Service interface {
	// SetAlarm arms or disarms the guild's session alarm
	SetAlarm(ctx context.Context, input *SetAlarmInput) (*models.GuildSettings, error)

	// SetChannel chooses the channel alarms are sent to
	SetChannel(ctx context.Context, input *SetChannelInput) (*models.GuildSettings, error)

	// SetGame stores the guild's tracked game name
	SetGame(ctx context.Context, input *SetGameInput) (*models.GuildSettings, error)

	// GetSettings returns the guild's settings, defaults included
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error)
}
