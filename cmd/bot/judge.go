package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/judgebot/internal/common/clock"
	"github.com/KirkDiggler/judgebot/internal/config"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	"github.com/KirkDiggler/judgebot/internal/services/judgment"
	"github.com/spf13/cobra"
)

var judgeCmd = &cobra.Command{
	Use:   "judge <userID>",
	Short: "Print a user's tracked time straight from the store",
	Long: `Print a user's tracked time straight from the store, without connecting to
Discord. Stop the bot first when using bolt storage, which allows one process.`,
	Args: cobra.ExactArgs(1),
	RunE: runJudge,
}

func init() {
	rootCmd.AddCommand(judgeCmd)
}

func runJudge(cmd *cobra.Command, args []string) error {
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return fmt.Errorf("invalid user ID %q", args[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := openStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer st.Close()

	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: st})
	if err != nil {
		return err
	}

	svc, err := judgment.New(&judgment.Config{
		SessionRepo: sessions,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		return err
	}

	output, err := svc.Judge(context.Background(), &judgment.JudgeInput{UserID: userID})
	if err != nil {
		return err
	}

	j := output.Judgment
	out := cmd.OutOrStdout()
	if j.NeverTracked {
		fmt.Fprintf(out, "%d has never played %s\n", userID, cfg.Tracking.ActivityName)
		return nil
	}

	fmt.Fprintf(out, "%d has played %s for %dh %dm %ds (%d seconds)",
		userID, cfg.Tracking.ActivityName,
		j.Breakdown.Hours, j.Breakdown.Minutes, j.Breakdown.Seconds, j.TotalSeconds)
	if j.Playing {
		fmt.Fprint(out, ", currently playing")
	}
	fmt.Fprintln(out)
	return nil
}
