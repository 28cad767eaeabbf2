package tracker

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/judgebot/internal/common/clock"
	"github.com/KirkDiggler/judgebot/internal/metrics"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	"github.com/rs/zerolog"
)

// lockStripes bounds the number of mutexes guarding per-user transitions
const lockStripes = 64

type service struct {
	trackedActivity string
	sessionRepo     sessionRepo.Repository
	alarmService    alarm.Service
	clock           clock.Clock
	logger          zerolog.Logger

	locks [lockStripes]sync.Mutex
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.AlarmService == nil {
		return nil, ErrNilAlarmService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.TrackedActivity == "" {
		return nil, ErrEmptyTrackedName
	}

	return &service{
		trackedActivity: cfg.TrackedActivity,
		sessionRepo:     cfg.SessionRepo,
		alarmService:    cfg.AlarmService,
		clock:           cfg.Clock,
		logger:          cfg.Logger.With().Str("component", "tracker").Logger(),
	}, nil
}

// lockFor serializes transitions for one user. Different users may share a
// stripe, which only costs throughput.
func (s *service) lockFor(userID int64) *sync.Mutex {
	return &s.locks[uint64(userID)%lockStripes]
}

// ActivityStarted opens a session for an idle user playing the tracked activity
func (s *service) ActivityStarted(ctx context.Context, input *ActivityStartedInput) (*ActivityStartedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.IsBot {
		return &ActivityStartedOutput{Ignored: IgnoreReasonBot}, nil
	}

	if input.ActivityName != s.trackedActivity {
		return &ActivityStartedOutput{Ignored: IgnoreReasonOtherActivity}, nil
	}

	if input.UserID <= 0 {
		return nil, ErrInvalidUserID
	}

	mu := s.lockFor(input.UserID)
	mu.Lock()
	opened, err := s.sessionRepo.OpenSession(ctx, &sessionRepo.OpenSessionInput{
		UserID:    input.UserID,
		StartedAt: clock.Epoch(s.clock),
	})
	mu.Unlock()
	if err != nil {
		recordCommitFailure("open_session", err)
		return nil, err
	}

	if !opened.Opened {
		return &ActivityStartedOutput{
			Ignored:   IgnoreReasonAlreadyPlaying,
			StartedAt: opened.StartedAt,
		}, nil
	}

	metrics.SessionsOpened.Inc()
	s.logger.Info().
		Int64("user_id", input.UserID).
		Int64("guild_id", input.GuildID).
		Int64("started_at", opened.StartedAt).
		Msg("Session opened")

	output := &ActivityStartedOutput{
		Opened:    true,
		StartedAt: opened.StartedAt,
	}

	// The session is already committed; alarm problems are only logged.
	notified, err := s.alarmService.MaybeNotify(ctx, &alarm.MaybeNotifyInput{
		GuildID:      input.GuildID,
		UserID:       input.UserID,
		UserName:     input.UserName,
		ActivityName: input.ActivityName,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", input.UserID).
			Int64("guild_id", input.GuildID).
			Msg("Failed to send alarm")
		return output, nil
	}
	output.Notified = notified.Sent

	return output, nil
}

// ActivityEnded closes a playing user's session
func (s *service) ActivityEnded(ctx context.Context, input *ActivityEndedInput) (*ActivityEndedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.IsBot {
		return &ActivityEndedOutput{Ignored: IgnoreReasonBot}, nil
	}

	if input.ActivityName != s.trackedActivity {
		return &ActivityEndedOutput{Ignored: IgnoreReasonOtherActivity}, nil
	}

	if input.UserID <= 0 {
		return nil, ErrInvalidUserID
	}

	mu := s.lockFor(input.UserID)
	mu.Lock()
	closed, err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		UserID:  input.UserID,
		EndedAt: clock.Epoch(s.clock),
	})
	mu.Unlock()
	if err != nil {
		recordCommitFailure("close_session", err)
		return nil, err
	}

	if !closed.Closed {
		return &ActivityEndedOutput{Ignored: IgnoreReasonNotPlaying}, nil
	}

	metrics.SessionsClosed.Inc()
	metrics.TrackedSeconds.Add(float64(closed.ElapsedSeconds))
	s.logger.Info().
		Int64("user_id", input.UserID).
		Int64("elapsed_seconds", closed.ElapsedSeconds).
		Int64("lifetime_seconds", closed.LifetimeSeconds).
		Msg("Session closed")

	return &ActivityEndedOutput{
		Closed:          true,
		ElapsedSeconds:  closed.ElapsedSeconds,
		LifetimeSeconds: closed.LifetimeSeconds,
	}, nil
}

func recordCommitFailure(operation string, err error) {
	if errors.Is(err, store.ErrCommit) {
		metrics.StoreCommitFailures.WithLabelValues(operation).Inc()
	}
}
