package guild

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/judgebot/internal/models"
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	guildMocks "github.com/KirkDiggler/judgebot/internal/repositories/guild/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuildServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGuildRepo *guildMocks.MockRepository
	guildService  Service
	ctx           context.Context

	testGuildID int64
}

func (s *GuildServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGuildRepo = guildMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.testGuildID = 555

	var err error
	s.guildService, err = New(&Config{GuildRepo: s.mockGuildRepo, Logger: zerolog.Nop()})
	s.Require().NoError(err)
}

func (s *GuildServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GuildServiceTestSuite) expectSettings(settings *models.GuildSettings) {
	s.mockGuildRepo.EXPECT().
		GetSettings(gomock.Any(), &guildRepo.GetSettingsInput{GuildID: s.testGuildID}).
		Return(settings, nil)
}

func (s *GuildServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilGuildRepo)
}

func (s *GuildServiceTestSuite) TestSetAlarm() {
	s.mockGuildRepo.EXPECT().
		SetAlarmArmed(gomock.Any(), &guildRepo.SetAlarmArmedInput{GuildID: s.testGuildID, Armed: true}).
		Return(nil)
	s.expectSettings(&models.GuildSettings{GuildID: s.testGuildID, AlarmArmed: true})

	settings, err := s.guildService.SetAlarm(s.ctx, &SetAlarmInput{GuildID: s.testGuildID, Armed: true})
	s.Require().NoError(err)
	s.True(settings.AlarmArmed)
}

func (s *GuildServiceTestSuite) TestSetChannel() {
	s.mockGuildRepo.EXPECT().
		SetAlarmChannel(gomock.Any(), &guildRepo.SetAlarmChannelInput{GuildID: s.testGuildID, ChannelID: 12}).
		Return(nil)
	s.expectSettings(&models.GuildSettings{GuildID: s.testGuildID, AlarmChannelID: 12})

	settings, err := s.guildService.SetChannel(s.ctx, &SetChannelInput{GuildID: s.testGuildID, ChannelID: 12})
	s.Require().NoError(err)
	s.Equal(int64(12), settings.AlarmChannelID)
}

func (s *GuildServiceTestSuite) TestSetGame_TrimsName() {
	s.mockGuildRepo.EXPECT().
		SetTrackedGame(gomock.Any(), &guildRepo.SetTrackedGameInput{GuildID: s.testGuildID, ActivityName: "Dota 2"}).
		Return(nil)
	s.expectSettings(&models.GuildSettings{GuildID: s.testGuildID, TrackedGame: "Dota 2"})

	settings, err := s.guildService.SetGame(s.ctx, &SetGameInput{GuildID: s.testGuildID, ActivityName: "  Dota 2 "})
	s.Require().NoError(err)
	s.Equal("Dota 2", settings.TrackedGame)
}

func (s *GuildServiceTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
		err  error
	}{
		{
			name: "alarm without guild",
			call: func() error {
				_, err := s.guildService.SetAlarm(s.ctx, &SetAlarmInput{Armed: true})
				return err
			},
			err: ErrInvalidGuild,
		},
		{
			name: "channel without channel",
			call: func() error {
				_, err := s.guildService.SetChannel(s.ctx, &SetChannelInput{GuildID: s.testGuildID})
				return err
			},
			err: ErrInvalidChannel,
		},
		{
			name: "blank game",
			call: func() error {
				_, err := s.guildService.SetGame(s.ctx, &SetGameInput{GuildID: s.testGuildID, ActivityName: "   "})
				return err
			},
			err: ErrEmptyGame,
		},
		{
			name: "nil settings input",
			call: func() error {
				_, err := s.guildService.GetSettings(s.ctx, nil)
				return err
			},
			err: ErrNilInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.ErrorIs(err, tc.err)
		})
	}

	s.True(IsInvalidInput(ErrEmptyGame))
	s.False(IsInvalidInput(errors.New("disk full")))
}

func (s *GuildServiceTestSuite) TestStoreFailure() {
	repoErr := errors.New("commit failed")
	s.mockGuildRepo.EXPECT().
		SetAlarmArmed(gomock.Any(), gomock.Any()).
		Return(repoErr)

	_, err := s.guildService.SetAlarm(s.ctx, &SetAlarmInput{GuildID: s.testGuildID})
	s.ErrorIs(err, repoErr)
	s.False(IsInvalidInput(err))
}

func TestGuildServiceSuite(t *testing.T) {
	suite.Run(t, new(GuildServiceTestSuite))
}
