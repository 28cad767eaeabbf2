package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/judgebot/internal/common/clock"
	"github.com/KirkDiggler/judgebot/internal/common/uuid"
	"github.com/KirkDiggler/judgebot/internal/config"
	"github.com/KirkDiggler/judgebot/internal/handlers/discord"
	"github.com/KirkDiggler/judgebot/internal/logging"
	"github.com/KirkDiggler/judgebot/internal/metrics"
	guildRepo "github.com/KirkDiggler/judgebot/internal/repositories/guild"
	sessionRepo "github.com/KirkDiggler/judgebot/internal/repositories/session"
	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	guildService "github.com/KirkDiggler/judgebot/internal/services/guild"
	"github.com/KirkDiggler/judgebot/internal/services/judgment"
	"github.com/KirkDiggler/judgebot/internal/services/tracker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and start tracking",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Logger = logger

	logger.Info().
		Str("version", version).
		Str("activity", cfg.Tracking.ActivityName).
		Msg("Starting judgebot")

	st, err := openStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	logger.Info().
		Str("type", cfg.Storage.Type).
		Str("path", cfg.Storage.Path).
		Msg("Storage initialized")

	// Initialize repositories
	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: st})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	guilds, err := guildRepo.New(&guildRepo.Config{Store: st})
	if err != nil {
		return fmt.Errorf("failed to create guild repository: %w", err)
	}

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}

	sender, err := discord.NewChannelSender(session)
	if err != nil {
		return err
	}

	// Initialize services
	systemClock := &clock.DefaultClock{}

	alarmSvc, err := alarm.New(&alarm.Config{
		GuildRepo: guilds,
		Sender:    sender,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create alarm service: %w", err)
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		TrackedActivity: cfg.Tracking.ActivityName,
		SessionRepo:     sessions,
		AlarmService:    alarmSvc,
		Clock:           systemClock,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracker service: %w", err)
	}

	judgmentSvc, err := judgment.New(&judgment.Config{
		SessionRepo: sessions,
		Clock:       systemClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create judgment service: %w", err)
	}

	guildSvc, err := guildService.New(&guildService.Config{
		GuildRepo: guilds,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create guild service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:         session,
		ApplicationID:   cfg.Discord.ApplicationID,
		GuildID:         cfg.Discord.GuildID,
		TrackedActivity: cfg.Tracking.ActivityName,
		TrackerService:  trackerSvc,
		JudgmentService: judgmentSvc,
		GuildService:    guildSvc,
		UUIDGenerator:   uuid.New(),
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if cfg.Metrics.Addr != "" {
		metricsServer := metrics.NewServer(cfg.Metrics.Addr, logger)
		if err := metricsServer.Start(); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			if err := metricsServer.Stop(); err != nil {
				logger.Error().Err(err).Msg("Failed to stop metrics server")
			}
		}()
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sc
	logger.Info().Str("signal", sig.String()).Msg("Shutting down")

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("Error stopping bot")
	}

	return nil
}
