package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnowflake(t *testing.T) {
	id, err := parseSnowflake("175928847299117063")
	require.NoError(t, err)
	assert.Equal(t, int64(175928847299117063), id)
	assert.Equal(t, "175928847299117063", formatSnowflake(id))

	for _, bad := range []string{"", "abc", "0", "-5", "99999999999999999999"} {
		_, err := parseSnowflake(bad)
		assert.Error(t, err, bad)
	}
}

func TestInteractionGuildID(t *testing.T) {
	inGuild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{GuildID: "81384788765712384"}}
	assert.Equal(t, int64(81384788765712384), interactionGuildID(inGuild))

	inDM := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	assert.Zero(t, interactionGuildID(inDM))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "", displayName(nil))
	assert.Equal(t, "teemo", displayName(&discordgo.User{Username: "teemo"}))
	assert.Equal(t, "Captain Teemo", displayName(&discordgo.User{Username: "teemo", GlobalName: "Captain Teemo"}))
}
