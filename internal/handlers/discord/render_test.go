package discord

import (
	"testing"

	"github.com/KirkDiggler/judgebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderJudgment(t *testing.T) {
	testCases := []struct {
		name     string
		judgment *models.Judgment
		expected string
	}{
		{
			name:     "never tracked",
			judgment: &models.Judgment{NeverTracked: true},
			expected: "Teemo has not played League of Legends to my knowledge. Good on them!",
		},
		{
			name: "finished",
			judgment: &models.Judgment{
				TotalSeconds: 90,
				Breakdown:    models.NewBreakdown(90),
			},
			expected: "Teemo has played League of Legends for 0 hours, 1 minutes, 30 seconds.",
		},
		{
			name: "currently playing",
			judgment: &models.Judgment{
				TotalSeconds: 3725,
				Playing:      true,
				Breakdown:    models.NewBreakdown(3725),
			},
			expected: "Teemo has played League of Legends for 1 hours, 2 minutes, 5 seconds, and is currently playing League of Legends!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, renderJudgment("Teemo", "League of Legends", tc.judgment))
		})
	}
}

func TestRenderSettings(t *testing.T) {
	assert.Equal(t, "Alarm is now ARMED", renderAlarm(true))
	assert.Equal(t, "Alarm is now DISARMED", renderAlarm(false))
	assert.Equal(t, "Alarm will now warn in channel: <#42>", renderChannel(42))
	assert.Equal(t, "Alarm is now tracking: Dota 2", renderGame("Dota 2"))
	assert.Equal(t, "Must specify a user: '/judgment [user]'.", renderMissingOption(CommandJudgment, optionUser))
}
