package alarm

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/judgebot/internal/services/alarm Service
//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/judgebot/internal/services/alarm Sender

// Service decides whether a session start should notify the guild
type Service interface {
	// MaybeNotify sends one notification if the guild's alarm is armed and has a channel
	MaybeNotify(ctx context.Context, input *MaybeNotifyInput) (*MaybeNotifyOutput, error)
}

// Sender delivers a message to a chat channel
type Sender interface {
	SendChannelMessage(ctx context.Context, input *SendChannelMessageInput) error
}
