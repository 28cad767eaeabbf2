package discord

import (
	"context"

	"github.com/KirkDiggler/judgebot/internal/models"
	"github.com/KirkDiggler/judgebot/internal/services/guild"
	"github.com/bwmarrin/discordgo"
)

const (
	CommandSetAlarm   = "set_alarm"
	CommandSetChannel = "set_channel"
	CommandSetGame    = "set_game"

	optionSwitch  = "switch"
	optionChannel = "channel"
	optionGame    = "game"
)

// settingsReply turns a guild service result into a reply. Invalid input
// is shown to the user; anything else is returned as an error.
func settingsReply(settings *models.GuildSettings, err error, render func(*models.GuildSettings) string) (*Response, error) {
	if err != nil {
		if guild.IsInvalidInput(err) {
			return &Response{Content: err.Error(), Ephemeral: true}, nil
		}
		return nil, err
	}
	return &Response{Content: render(settings)}, nil
}

// SetAlarmCommand handles the /set_alarm command
type SetAlarmCommand struct {
	BaseCommand
	guildService guild.Service
}

// NewSetAlarmCommand creates a new set_alarm command handler
func NewSetAlarmCommand(guildService guild.Service) *SetAlarmCommand {
	return &SetAlarmCommand{
		BaseCommand: BaseCommand{
			Name:        CommandSetAlarm,
			Description: "Toggle an alarm that warns when a user starts playing",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        optionSwitch,
					Description: "Turn the alarm on or off",
					Required:    true,
				},
			},
		},
		guildService: guildService,
	}
}

// Handle arms or disarms the guild's alarm
func (c *SetAlarmCommand) Handle(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error) {
	armed, ok := optionBool(findOption(i.ApplicationCommandData().Options, optionSwitch))
	if !ok {
		return &Response{Content: renderMissingOption(CommandSetAlarm, optionSwitch), Ephemeral: true}, nil
	}

	settings, err := c.guildService.SetAlarm(ctx, &guild.SetAlarmInput{
		GuildID: interactionGuildID(i),
		Armed:   armed,
	})
	return settingsReply(settings, err, func(s *models.GuildSettings) string {
		return renderAlarm(s.AlarmArmed)
	})
}

// SetChannelCommand handles the /set_channel command
type SetChannelCommand struct {
	BaseCommand
	guildService guild.Service
}

// NewSetChannelCommand creates a new set_channel command handler
func NewSetChannelCommand(guildService guild.Service) *SetChannelCommand {
	return &SetChannelCommand{
		BaseCommand: BaseCommand{
			Name:        CommandSetChannel,
			Description: "Set the channel for the alarm to warn in",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         optionChannel,
					Description:  "Alarm will warn in this channel, defaults to the current one",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
			},
		},
		guildService: guildService,
	}
}

// Handle stores the alarm channel, falling back to the invoking channel
func (c *SetChannelCommand) Handle(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error) {
	rawID, ok := optionString(findOption(i.ApplicationCommandData().Options, optionChannel))
	if !ok {
		rawID = i.ChannelID
	}

	// Zero is rejected by the guild service
	channelID, _ := parseSnowflake(rawID)

	settings, err := c.guildService.SetChannel(ctx, &guild.SetChannelInput{
		GuildID:   interactionGuildID(i),
		ChannelID: channelID,
	})
	return settingsReply(settings, err, func(s *models.GuildSettings) string {
		return renderChannel(s.AlarmChannelID)
	})
}

// SetGameCommand handles the /set_game command
type SetGameCommand struct {
	BaseCommand
	guildService guild.Service
}

// NewSetGameCommand creates a new set_game command handler
func NewSetGameCommand(guildService guild.Service) *SetGameCommand {
	return &SetGameCommand{
		BaseCommand: BaseCommand{
			Name:        CommandSetGame,
			Description: "Set the game to be tracked and judged",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionGame,
					Description: "Set the game to be tracked and judged",
					Required:    true,
				},
			},
		},
		guildService: guildService,
	}
}

// Handle stores the guild's tracked game
func (c *SetGameCommand) Handle(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error) {
	name, ok := optionString(findOption(i.ApplicationCommandData().Options, optionGame))
	if !ok {
		return &Response{Content: renderMissingOption(CommandSetGame, optionGame), Ephemeral: true}, nil
	}

	settings, err := c.guildService.SetGame(ctx, &guild.SetGameInput{
		GuildID:      interactionGuildID(i),
		ActivityName: name,
	})
	return settingsReply(settings, err, func(s *models.GuildSettings) string {
		return renderGame(s.TrackedGame)
	})
}
