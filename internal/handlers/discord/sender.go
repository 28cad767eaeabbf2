package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	"github.com/bwmarrin/discordgo"
)

// ChannelSender delivers alarm messages through the Discord REST API
type ChannelSender struct {
	session *discordgo.Session
}

// NewChannelSender creates a sender over an existing session
func NewChannelSender(session *discordgo.Session) (*ChannelSender, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	return &ChannelSender{session: session}, nil
}

// SendChannelMessage posts the message to the channel
func (c *ChannelSender) SendChannelMessage(ctx context.Context, input *alarm.SendChannelMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	_, err := c.session.ChannelMessageSend(formatSnowflake(input.ChannelID), input.Content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
