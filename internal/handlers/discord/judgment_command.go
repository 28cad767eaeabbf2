package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/services/judgment"
	"github.com/bwmarrin/discordgo"
)

const (
	CommandJudgment = "judgment"
	optionUser      = "user"
)

// JudgmentCommand handles the /judgment command
type JudgmentCommand struct {
	BaseCommand
	judgmentService judgment.Service
	activity        string
}

// NewJudgmentCommand creates a new judgment command handler
func NewJudgmentCommand(judgmentService judgment.Service, activity string) *JudgmentCommand {
	return &JudgmentCommand{
		BaseCommand: BaseCommand{
			Name:        CommandJudgment,
			Description: fmt.Sprintf("Judge a user's %s habits", activity),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        optionUser,
					Description: "Pass judgment upon this user",
					Required:    true,
				},
			},
		},
		judgmentService: judgmentService,
		activity:        activity,
	}
}

// Handle reports the target user's tracked time
func (c *JudgmentCommand) Handle(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error) {
	data := i.ApplicationCommandData()

	rawID, ok := optionString(findOption(data.Options, optionUser))
	if !ok {
		return &Response{Content: renderMissingOption(CommandJudgment, optionUser), Ephemeral: true}, nil
	}

	userID, err := parseSnowflake(rawID)
	if err != nil {
		return &Response{Content: renderMissingOption(CommandJudgment, optionUser), Ephemeral: true}, nil
	}

	output, err := c.judgmentService.Judge(ctx, &judgment.JudgeInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("<@%d>", userID)
	if data.Resolved != nil {
		if u := displayName(data.Resolved.Users[rawID]); u != "" {
			name = u
		}
	}

	return &Response{Content: renderJudgment(name, c.activity, output.Judgment)}, nil
}
