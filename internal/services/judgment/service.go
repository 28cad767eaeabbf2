package judgment

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/common/clock"
	"github.com/KirkDiggler/judgebot/internal/models"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
)

type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
}

// New creates a new judgment service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
	}, nil
}

// Judge computes lifetime plus live time. It never writes.
func (s *service) Judge(ctx context.Context, input *JudgeInput) (*JudgeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID <= 0 {
		return nil, ErrInvalidUserID
	}

	record, err := s.sessionRepo.GetJudgmentRecord(ctx, &sessionRepo.GetJudgmentRecordInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read judgment record: %w", err)
	}

	total := record.LifetimeSeconds
	if record.Playing {
		live := clock.Epoch(s.clock) - record.StartedAt
		if live > 0 {
			total += live
		}
	}

	return &JudgeOutput{
		Judgment: &models.Judgment{
			UserID:       input.UserID,
			TotalSeconds: total,
			Playing:      record.Playing,
			NeverTracked: total == 0,
			Breakdown:    models.NewBreakdown(total),
		},
	}, nil
}
