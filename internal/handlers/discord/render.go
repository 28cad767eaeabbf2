package discord

import (
	"fmt"

	"github.com/KirkDiggler/judgebot/internal/models"
)

// renderJudgment renders the reply for the judgment command
func renderJudgment(userName, activity string, j *models.Judgment) string {
	if j.NeverTracked {
		return fmt.Sprintf("%s has not played %s to my knowledge. Good on them!", userName, activity)
	}

	suffix := "."
	if j.Playing {
		suffix = fmt.Sprintf(", and is currently playing %s!", activity)
	}

	return fmt.Sprintf("%s has played %s for %d hours, %d minutes, %d seconds%s",
		userName, activity,
		j.Breakdown.Hours, j.Breakdown.Minutes, j.Breakdown.Seconds,
		suffix)
}

func renderMissingOption(command, option string) string {
	return fmt.Sprintf("Must specify a %s: '/%s [%s]'.", option, command, option)
}

func renderAlarm(armed bool) string {
	if armed {
		return "Alarm is now ARMED"
	}
	return "Alarm is now DISARMED"
}

func renderChannel(channelID int64) string {
	return fmt.Sprintf("Alarm will now warn in channel: <#%d>", channelID)
}

func renderGame(name string) string {
	return fmt.Sprintf("Alarm is now tracking: %s", name)
}

func renderInternalError() string {
	return "Something went wrong, please try again later."
}
