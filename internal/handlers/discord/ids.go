package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// parseSnowflake converts a Discord ID into the numeric key used by the store
func parseSnowflake(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", id, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid snowflake %q", id)
	}
	return v, nil
}

func formatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// interactionGuildID returns zero outside a guild, which the guild
// service rejects with a user facing error.
func interactionGuildID(i *discordgo.InteractionCreate) int64 {
	if i.GuildID == "" {
		return 0
	}
	id, err := parseSnowflake(i.GuildID)
	if err != nil {
		return 0
	}
	return id
}

// displayName prefers the user's global display name
func displayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
