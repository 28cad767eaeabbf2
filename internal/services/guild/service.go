package guild

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/judgebot/internal/models"
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	"github.com/rs/zerolog"
)

type service struct {
	guildRepo guildRepo.Repository
	logger    zerolog.Logger
}

// New creates a new guild service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GuildRepo == nil {
		return nil, ErrNilGuildRepo
	}

	return &service{
		guildRepo: cfg.GuildRepo,
		logger:    cfg.Logger.With().Str("component", "guild").Logger(),
	}, nil
}

// SetAlarm arms or disarms the guild's alarm
func (s *service) SetAlarm(ctx context.Context, input *SetAlarmInput) (*models.GuildSettings, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID <= 0 {
		return nil, ErrInvalidGuild
	}

	err := s.guildRepo.SetAlarmArmed(ctx, &guildRepo.SetAlarmArmedInput{
		GuildID: input.GuildID,
		Armed:   input.Armed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set alarm: %w", err)
	}

	s.logger.Info().
		Int64("guild_id", input.GuildID).
		Bool("armed", input.Armed).
		Msg("Alarm updated")

	return s.GetSettings(ctx, &GetSettingsInput{GuildID: input.GuildID})
}

// SetChannel chooses the guild's alarm channel
func (s *service) SetChannel(ctx context.Context, input *SetChannelInput) (*models.GuildSettings, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID <= 0 {
		return nil, ErrInvalidGuild
	}

	if input.ChannelID <= 0 {
		return nil, ErrInvalidChannel
	}

	err := s.guildRepo.SetAlarmChannel(ctx, &guildRepo.SetAlarmChannelInput{
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set alarm channel: %w", err)
	}

	s.logger.Info().
		Int64("guild_id", input.GuildID).
		Int64("channel_id", input.ChannelID).
		Msg("Alarm channel updated")

	return s.GetSettings(ctx, &GetSettingsInput{GuildID: input.GuildID})
}

// SetGame stores the guild's tracked game. Surrounding whitespace is dropped.
func (s *service) SetGame(ctx context.Context, input *SetGameInput) (*models.GuildSettings, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID <= 0 {
		return nil, ErrInvalidGuild
	}

	name := strings.TrimSpace(input.ActivityName)
	if name == "" {
		return nil, ErrEmptyGame
	}

	err := s.guildRepo.SetTrackedGame(ctx, &guildRepo.SetTrackedGameInput{
		GuildID:      input.GuildID,
		ActivityName: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set tracked game: %w", err)
	}

	s.logger.Info().
		Int64("guild_id", input.GuildID).
		Str("game", name).
		Msg("Tracked game updated")

	return s.GetSettings(ctx, &GetSettingsInput{GuildID: input.GuildID})
}

// GetSettings returns the guild's settings
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GuildID <= 0 {
		return nil, ErrInvalidGuild
	}

	settings, err := s.guildRepo.GetSettings(ctx, &guildRepo.GetSettingsInput{GuildID: input.GuildID})
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	return settings, nil
}
