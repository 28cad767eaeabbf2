package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/models"
	"github.com/KirkDiggler/judgebot/internal/repositories/store"
)

// Config holds configuration for the store-backed session repository
type Config struct {
	Store store.Store
}

type storeRepository struct {
	store store.Store
}

// New creates a session repository over the durable store
func New(cfg *Config) (*storeRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &storeRepository{store: cfg.Store}, nil
}

// OpenSession puts the start time only if the user has no open session.
// The check and the put commit in the same transaction.
func (r *storeRepository) OpenSession(ctx context.Context, input *OpenSessionInput) (*OpenSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output OpenSessionOutput
	err := r.store.Update(ctx, func(tx store.Tx) error {
		current := tx.Int64s(store.MapCurrent)

		start, open, err := current.Get(input.UserID)
		if err != nil {
			return err
		}
		if open {
			output = OpenSessionOutput{Opened: false, StartedAt: start}
			return nil
		}

		if err := current.Put(input.UserID, input.StartedAt); err != nil {
			return err
		}
		output = OpenSessionOutput{Opened: true, StartedAt: input.StartedAt}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return &output, nil
}

// CloseSession removes the open session and adds its clamped duration to the
// lifetime total. Both writes commit together or not at all.
func (r *storeRepository) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var output CloseSessionOutput
	err := r.store.Update(ctx, func(tx store.Tx) error {
		start, open, err := tx.Int64s(store.MapCurrent).Remove(input.UserID)
		if err != nil {
			return err
		}
		if !open {
			output = CloseSessionOutput{Closed: false}
			return nil
		}

		judgments := tx.Int64s(store.MapJudgment)
		lifetime, err := judgments.GetOrDefault(input.UserID, 0)
		if err != nil {
			return err
		}

		elapsed := input.EndedAt - start
		if elapsed < 0 {
			elapsed = 0
		}

		lifetime += elapsed
		if err := judgments.Put(input.UserID, lifetime); err != nil {
			return err
		}

		output = CloseSessionOutput{
			Closed:          true,
			StartedAt:       start,
			ElapsedSeconds:  elapsed,
			LifetimeSeconds: lifetime,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	return &output, nil
}

// GetJudgmentRecord reads both maps in a single read transaction
func (r *storeRepository) GetJudgmentRecord(ctx context.Context, input *GetJudgmentRecordInput) (*models.JudgmentRecord, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	record := &models.JudgmentRecord{UserID: input.UserID}
	err := r.store.View(ctx, func(tx store.Tx) error {
		lifetime, err := tx.Int64s(store.MapJudgment).GetOrDefault(input.UserID, 0)
		if err != nil {
			return err
		}
		start, open, err := tx.Int64s(store.MapCurrent).Get(input.UserID)
		if err != nil {
			return err
		}

		record.LifetimeSeconds = lifetime
		record.Playing = open
		if open {
			record.StartedAt = start
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get judgment record: %w", err)
	}

	return record, nil
}
