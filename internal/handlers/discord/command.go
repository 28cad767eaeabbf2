package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a command interaction and returns the reply.
	// Bad user input is a reply, not an error.
	Handle(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error)
}

// Response is the reply to a command interaction
type Response struct {
	Content string

	// Ephemeral replies are only visible to the invoking user
	Ephemeral bool
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// errorColor is the embed color for failed commands
const errorColor = 0xff0000

// RespondWithError answers an interaction with an ephemeral error embed
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "Judgment failed",
				Description: message,
				Color:       errorColor,
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithResponse sends a command handler's reply
func RespondWithResponse(s *discordgo.Session, i *discordgo.InteractionCreate, resp *Response) error {
	if resp.Ephemeral {
		return RespondWithEphemeralMessage(s, i, resp.Content)
	}
	return RespondWithMessage(s, i, resp.Content)
}

// findOption returns the named option or nil
func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt != nil && opt.Name == name {
			return opt
		}
	}
	return nil
}

// optionString reads string-valued options, which includes user and channel IDs
func optionString(opt *discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	if opt == nil {
		return "", false
	}
	v, ok := opt.Value.(string)
	return v, ok
}

func optionBool(opt *discordgo.ApplicationCommandInteractionDataOption) (bool, bool) {
	if opt == nil {
		return false, false
	}
	v, ok := opt.Value.(bool)
	return v, ok
}
