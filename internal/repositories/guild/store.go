package guild

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/models"
	"github.com/KirkDiggler/judgebot/internal/repositories/store"
)

// Defaults returned for a guild with no stored value
const (
	DefaultAlarmArmed     = false
	DefaultAlarmChannelID = int64(0)
	DefaultTrackedGame    = ""
)

// Config holds configuration for the store-backed guild repository
type Config struct {
	Store store.Store
}

type storeRepository struct {
	store store.Store
}

// New creates a guild repository over the durable store
func New(cfg *Config) (*storeRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &storeRepository{store: cfg.Store}, nil
}

// GetSettings reads all three guild maps
func (r *storeRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GuildSettings, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	settings := &models.GuildSettings{GuildID: input.GuildID}
	err := r.store.View(ctx, func(tx store.Tx) error {
		var err error
		if settings.TrackedGame, err = tx.Strings(store.MapGuildGame).GetOrDefault(input.GuildID, DefaultTrackedGame); err != nil {
			return err
		}
		if settings.AlarmArmed, err = tx.Bools(store.MapAlarmPermissions).GetOrDefault(input.GuildID, DefaultAlarmArmed); err != nil {
			return err
		}
		if settings.AlarmChannelID, err = tx.Int64s(store.MapAlarmChannels).GetOrDefault(input.GuildID, DefaultAlarmChannelID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	return settings, nil
}

// SetAlarmArmed persists the armed flag
func (r *storeRepository) SetAlarmArmed(ctx context.Context, input *SetAlarmArmedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := r.store.Update(ctx, func(tx store.Tx) error {
		return tx.Bools(store.MapAlarmPermissions).Put(input.GuildID, input.Armed)
	})
	if err != nil {
		return fmt.Errorf("failed to set alarm armed: %w", err)
	}

	return nil
}

// SetAlarmChannel persists the alarm channel
func (r *storeRepository) SetAlarmChannel(ctx context.Context, input *SetAlarmChannelInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := r.store.Update(ctx, func(tx store.Tx) error {
		return tx.Int64s(store.MapAlarmChannels).Put(input.GuildID, input.ChannelID)
	})
	if err != nil {
		return fmt.Errorf("failed to set alarm channel: %w", err)
	}

	return nil
}

// SetTrackedGame persists the tracked activity name
func (r *storeRepository) SetTrackedGame(ctx context.Context, input *SetTrackedGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := r.store.Update(ctx, func(tx store.Tx) error {
		return tx.Strings(store.MapGuildGame).Put(input.GuildID, input.ActivityName)
	})
	if err != nil {
		return fmt.Errorf("failed to set tracked game: %w", err)
	}

	return nil
}
