package tracker

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/judgebot/internal/common/clock/mocks"
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	boltStore "github.com/KirkDiggler/judgebot/internal/repositories/store/bolt"
	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	alarmMocks "github.com/KirkDiggler/judgebot/internal/services/alarm/mocks"
	guildService "github.com/KirkDiggler/judgebot/internal/services/guild"
	"github.com/KirkDiggler/judgebot/internal/services/judgment"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScenarioTestSuite runs the tracker against a real bolt store and the
// judgment, guild and alarm services. Only the clock and sender are mocked.
type ScenarioTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClock  *mocks.MockClock
	mockSender *alarmMocks.MockSender
	store      store.Store
	ctx        context.Context

	now int64

	tracker  Service
	judgment judgment.Service
	guilds   guildService.Service

	user    int64
	guild   int64
	channel int64
	game    string
}

func (s *ScenarioTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockSender = alarmMocks.NewMockSender(s.mockCtrl)
	s.ctx = context.Background()

	s.user = 1
	s.guild = 2
	s.channel = 3
	s.game = "League of Legends"

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return time.Unix(s.now, 0)
	}).AnyTimes()

	var err error
	s.store, err = boltStore.Open(&boltStore.Config{Path: filepath.Join(s.T().TempDir(), "guilty_sinners.db")})
	s.Require().NoError(err)

	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: s.store})
	s.Require().NoError(err)
	guildSettings, err := guildRepo.New(&guildRepo.Config{Store: s.store})
	s.Require().NoError(err)

	alarms, err := alarm.New(&alarm.Config{
		GuildRepo: guildSettings,
		Sender:    s.mockSender,
		Logger:    zerolog.Nop(),
	})
	s.Require().NoError(err)

	s.tracker, err = New(&Config{
		TrackedActivity: s.game,
		SessionRepo:     sessions,
		AlarmService:    alarms,
		Clock:           s.mockClock,
		Logger:          zerolog.Nop(),
	})
	s.Require().NoError(err)

	s.judgment, err = judgment.New(&judgment.Config{SessionRepo: sessions, Clock: s.mockClock})
	s.Require().NoError(err)

	s.guilds, err = guildService.New(&guildService.Config{GuildRepo: guildSettings, Logger: zerolog.Nop()})
	s.Require().NoError(err)
}

func (s *ScenarioTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
	s.mockCtrl.Finish()
}

func (s *ScenarioTestSuite) start() *ActivityStartedOutput {
	output, err := s.tracker.ActivityStarted(s.ctx, &ActivityStartedInput{
		UserID:       s.user,
		GuildID:      s.guild,
		UserName:     "Teemo",
		ActivityName: s.game,
	})
	s.Require().NoError(err)
	return output
}

func (s *ScenarioTestSuite) end() *ActivityEndedOutput {
	output, err := s.tracker.ActivityEnded(s.ctx, &ActivityEndedInput{
		UserID:       s.user,
		ActivityName: s.game,
	})
	s.Require().NoError(err)
	return output
}

func (s *ScenarioTestSuite) judge() *judgment.JudgeOutput {
	output, err := s.judgment.Judge(s.ctx, &judgment.JudgeInput{UserID: s.user})
	s.Require().NoError(err)
	return output
}

func (s *ScenarioTestSuite) TestNeverTracked() {
	s.now = 5000

	j := s.judge().Judgment
	s.True(j.NeverTracked)
	s.False(j.Playing)
	s.Zero(j.TotalSeconds)
}

func (s *ScenarioTestSuite) TestStartQueryEnd() {
	s.now = 1000
	s.True(s.start().Opened)

	s.now = 1090
	j := s.judge().Judgment
	s.True(j.Playing)
	s.False(j.NeverTracked)
	s.Equal(int64(0), j.Breakdown.Hours)
	s.Equal(int64(1), j.Breakdown.Minutes)
	s.Equal(int64(30), j.Breakdown.Seconds)

	ended := s.end()
	s.True(ended.Closed)
	s.Equal(int64(90), ended.LifetimeSeconds)

	s.now = 2000
	j = s.judge().Judgment
	s.False(j.Playing)
	s.Equal(int64(90), j.TotalSeconds)
	s.Equal(int64(1), j.Breakdown.Minutes)
	s.Equal(int64(30), j.Breakdown.Seconds)
}

func (s *ScenarioTestSuite) TestSecondStartKeepsOriginalStart() {
	s.now = 1000
	s.True(s.start().Opened)

	s.now = 1500
	again := s.start()
	s.False(again.Opened)
	s.Equal(int64(1000), again.StartedAt)

	s.now = 1600
	s.Equal(int64(600), s.end().ElapsedSeconds)
}

func (s *ScenarioTestSuite) TestEndWithoutStartLeavesTotal() {
	s.now = 1000
	s.False(s.end().Closed)
	s.True(s.judge().Judgment.NeverTracked)
}

func (s *ScenarioTestSuite) TestJudgeIsStableWithoutEvents() {
	s.now = 1000
	s.start()

	s.now = 1234
	first := s.judge().Judgment
	second := s.judge().Judgment
	s.Equal(first, second)
}

func (s *ScenarioTestSuite) TestArmedAlarmWithChannelSendsOnce() {
	s.now = 1000
	_, err := s.guilds.SetAlarm(s.ctx, &guildService.SetAlarmInput{GuildID: s.guild, Armed: true})
	s.Require().NoError(err)
	_, err = s.guilds.SetChannel(s.ctx, &guildService.SetChannelInput{GuildID: s.guild, ChannelID: s.channel})
	s.Require().NoError(err)

	s.mockSender.EXPECT().
		SendChannelMessage(gomock.Any(), &alarm.SendChannelMessageInput{
			ChannelID: s.channel,
			Content:   "Teemo has started playing League of Legends!",
		}).
		Return(nil).
		Times(1)

	output := s.start()
	s.True(output.Opened)
	s.True(output.Notified)

	// Already playing, no second alarm
	s.False(s.start().Opened)
}

func (s *ScenarioTestSuite) TestArmedAlarmWithoutChannelIsQuiet() {
	s.now = 1000
	_, err := s.guilds.SetAlarm(s.ctx, &guildService.SetAlarmInput{GuildID: s.guild, Armed: true})
	s.Require().NoError(err)

	output := s.start()
	s.True(output.Opened)
	s.False(output.Notified)
}

func (s *ScenarioTestSuite) TestConcurrentStartsOpenOneSession() {
	s.now = 1000

	var wg sync.WaitGroup
	results := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.tracker.ActivityStarted(s.ctx, &ActivityStartedInput{
				UserID:       s.user,
				GuildID:      s.guild,
				ActivityName: s.game,
			})
			if err == nil {
				results <- output.Opened
			}
		}()
	}
	wg.Wait()
	close(results)

	opened := 0
	total := 0
	for ok := range results {
		total++
		if ok {
			opened++
		}
	}
	s.Equal(20, total)
	s.Equal(1, opened)
}

func (s *ScenarioTestSuite) TestSessionSurvivesRestart() {
	path := filepath.Join(s.T().TempDir(), "restart.db")
	first, err := boltStore.Open(&boltStore.Config{Path: path})
	s.Require().NoError(err)
	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: first})
	s.Require().NoError(err)

	s.now = 1000
	_, err = sessions.OpenSession(s.ctx, &sessionRepo.OpenSessionInput{UserID: s.user, StartedAt: s.now})
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := boltStore.Open(&boltStore.Config{Path: path})
	s.Require().NoError(err)
	defer second.Close()
	sessions, err = sessionRepo.New(&sessionRepo.Config{Store: second})
	s.Require().NoError(err)

	s.now = 1300
	closed, err := sessions.CloseSession(s.ctx, &sessionRepo.CloseSessionInput{UserID: s.user, EndedAt: s.now})
	s.Require().NoError(err)
	s.True(closed.Closed)
	s.Equal(int64(300), closed.ElapsedSeconds)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
