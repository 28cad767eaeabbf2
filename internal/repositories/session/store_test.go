package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	boltStore "github.com/KirkDiggler/judgebot/internal/repositories/store/bolt"
	redisStore "github.com/KirkDiggler/judgebot/internal/repositories/store/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	openStore func() store.Store
	store     store.Store
	repo      Repository
	ctx       context.Context
}

func (s *SessionRepositoryTestSuite) SetupTest() {
	s.store = s.openStore()

	repo, err := New(&Config{Store: s.store})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *SessionRepositoryTestSuite) TearDownTest() {
	_ = s.store.Close()
}

func TestSessionRepositoryBolt(t *testing.T) {
	suite.Run(t, &SessionRepositoryTestSuite{
		openStore: func() store.Store {
			st, err := boltStore.Open(&boltStore.Config{Path: filepath.Join(t.TempDir(), "sessions.db")})
			if err != nil {
				t.Fatalf("open bolt store: %v", err)
			}
			return st
		},
	})
}

func TestSessionRepositoryRedis(t *testing.T) {
	suite.Run(t, &SessionRepositoryTestSuite{
		openStore: func() store.Store {
			mr := miniredis.RunT(t)
			st, err := redisStore.NewRedis(&redisStore.Config{
				RedisClient: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
			})
			if err != nil {
				t.Fatalf("open redis store: %v", err)
			}
			return st
		},
	})
}

func (s *SessionRepositoryTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *SessionRepositoryTestSuite) TestOpenThenClose() {
	opened, err := s.repo.OpenSession(s.ctx, &OpenSessionInput{UserID: 1, StartedAt: 1000})
	s.Require().NoError(err)
	s.True(opened.Opened)
	s.Equal(int64(1000), opened.StartedAt)

	closed, err := s.repo.CloseSession(s.ctx, &CloseSessionInput{UserID: 1, EndedAt: 1090})
	s.Require().NoError(err)
	s.True(closed.Closed)
	s.Equal(int64(1000), closed.StartedAt)
	s.Equal(int64(90), closed.ElapsedSeconds)
	s.Equal(int64(90), closed.LifetimeSeconds)

	record, err := s.repo.GetJudgmentRecord(s.ctx, &GetJudgmentRecordInput{UserID: 1})
	s.Require().NoError(err)
	s.Equal(int64(90), record.LifetimeSeconds)
	s.False(record.Playing)
	s.Zero(record.StartedAt)
}

func (s *SessionRepositoryTestSuite) TestSecondOpenKeepsOriginalStart() {
	_, err := s.repo.OpenSession(s.ctx, &OpenSessionInput{UserID: 2, StartedAt: 1000})
	s.Require().NoError(err)

	again, err := s.repo.OpenSession(s.ctx, &OpenSessionInput{UserID: 2, StartedAt: 1500})
	s.Require().NoError(err)
	s.False(again.Opened)
	s.Equal(int64(1000), again.StartedAt)

	record, err := s.repo.GetJudgmentRecord(s.ctx, &GetJudgmentRecordInput{UserID: 2})
	s.Require().NoError(err)
	s.True(record.Playing)
	s.Equal(int64(1000), record.StartedAt)
}

func (s *SessionRepositoryTestSuite) TestCloseWithoutOpenLeavesTotalUntouched() {
	closed, err := s.repo.CloseSession(s.ctx, &CloseSessionInput{UserID: 3, EndedAt: 5000})
	s.Require().NoError(err)
	s.False(closed.Closed)

	err = s.store.View(s.ctx, func(tx store.Tx) error {
		ok, err := tx.Int64s(store.MapJudgment).Contains(3)
		s.Require().NoError(err)
		s.False(ok)
		return nil
	})
	s.Require().NoError(err)
}

func (s *SessionRepositoryTestSuite) TestClockSkewClampsToZero() {
	_, err := s.repo.OpenSession(s.ctx, &OpenSessionInput{UserID: 4, StartedAt: 2000})
	s.Require().NoError(err)

	closed, err := s.repo.CloseSession(s.ctx, &CloseSessionInput{UserID: 4, EndedAt: 1500})
	s.Require().NoError(err)
	s.True(closed.Closed)
	s.Zero(closed.ElapsedSeconds)
	s.Zero(closed.LifetimeSeconds)

	record, err := s.repo.GetJudgmentRecord(s.ctx, &GetJudgmentRecordInput{UserID: 4})
	s.Require().NoError(err)
	s.False(record.Playing)
	s.Zero(record.LifetimeSeconds)
}

func (s *SessionRepositoryTestSuite) TestSessionsAccumulate() {
	for _, span := range [][2]int64{{0, 60}, {100, 130}, {1000, 1010}} {
		_, err := s.repo.OpenSession(s.ctx, &OpenSessionInput{UserID: 5, StartedAt: span[0]})
		s.Require().NoError(err)
		_, err = s.repo.CloseSession(s.ctx, &CloseSessionInput{UserID: 5, EndedAt: span[1]})
		s.Require().NoError(err)
	}

	record, err := s.repo.GetJudgmentRecord(s.ctx, &GetJudgmentRecordInput{UserID: 5})
	s.Require().NoError(err)
	s.Equal(int64(100), record.LifetimeSeconds)
}

func (s *SessionRepositoryTestSuite) TestUnknownUserRecord() {
	record, err := s.repo.GetJudgmentRecord(s.ctx, &GetJudgmentRecordInput{UserID: 404})
	s.Require().NoError(err)
	s.Equal(int64(404), record.UserID)
	s.Zero(record.LifetimeSeconds)
	s.False(record.Playing)
}

func (s *SessionRepositoryTestSuite) TestNilInputs() {
	_, err := s.repo.OpenSession(s.ctx, nil)
	s.Error(err)
	_, err = s.repo.CloseSession(s.ctx, nil)
	s.Error(err)
	_, err = s.repo.GetJudgmentRecord(s.ctx, nil)
	s.Error(err)
}
