package alarm

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/metrics"
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	"github.com/rs/zerolog"
)

type service struct {
	guildRepo guildRepo.Repository
	sender    Sender
	logger    zerolog.Logger
}

// New creates a new alarm service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GuildRepo == nil {
		return nil, ErrNilGuildRepo
	}

	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	return &service{
		guildRepo: cfg.GuildRepo,
		sender:    cfg.Sender,
		logger:    cfg.Logger.With().Str("component", "alarm").Logger(),
	}, nil
}

// MaybeNotify reads the guild's alarm settings and sends at most one message.
// Armed without a channel is a misconfiguration, not a failure.
func (s *service) MaybeNotify(ctx context.Context, input *MaybeNotifyInput) (*MaybeNotifyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	settings, err := s.guildRepo.GetSettings(ctx, &guildRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if !settings.AlarmArmed {
		return &MaybeNotifyOutput{Skipped: SkipReasonDisarmed}, nil
	}

	if !settings.HasAlarmChannel() {
		s.logger.Debug().
			Int64("guild_id", input.GuildID).
			Msg("Alarm armed without a channel")
		return &MaybeNotifyOutput{Skipped: SkipReasonNoChannel}, nil
	}

	err = s.sender.SendChannelMessage(ctx, &SendChannelMessageInput{
		ChannelID: settings.AlarmChannelID,
		Content:   notificationText(input),
	})
	if err != nil {
		metrics.AlarmFailures.Inc()
		return nil, fmt.Errorf("failed to send alarm to channel %d: %w", settings.AlarmChannelID, err)
	}

	metrics.AlarmsSent.Inc()
	return &MaybeNotifyOutput{
		Sent:      true,
		ChannelID: settings.AlarmChannelID,
	}, nil
}

func notificationText(input *MaybeNotifyInput) string {
	name := input.UserName
	if name == "" {
		name = fmt.Sprintf("<@%d>", input.UserID)
	}
	return fmt.Sprintf("%s has started playing %s!", name, input.ActivityName)
}
