package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/judgebot/internal/common/uuid"
	"github.com/KirkDiggler/judgebot/internal/services/guild"
	"github.com/KirkDiggler/judgebot/internal/services/judgment"
	"github.com/KirkDiggler/judgebot/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Intents needed to see guilds and their members' activities.
// Presences is a privileged intent and must be enabled for the application.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildPresences

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	presence   *presenceCache

	// userLocks serialize presence handling per user, from the cache diff
	// through the tracker calls
	userLocks [64]sync.Mutex

	trackerService tracker.Service
	uuid           uuid.UUID
	logger         zerolog.Logger
	config         *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened gateway session, see NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// TrackedActivity is shown in judgment replies
	TrackedActivity string

	// Services
	TrackerService  tracker.Service
	JudgmentService judgment.Service
	GuildService    guild.Service

	UUIDGenerator uuid.UUID
	Logger        zerolog.Logger
}

// NewSession creates a gateway session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents
	// Handlers run on the gateway goroutine in arrival order, so one
	// user's presence updates reach the tracker in the order Discord sent them
	session.SyncEvents = true

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.JudgmentService == nil {
		return nil, errors.New("judgment service cannot be nil")
	}

	if cfg.GuildService == nil {
		return nil, errors.New("guild service cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.New()
	}

	bot := &Bot{
		session:        cfg.Session,
		commands:       make(map[string]CommandHandler),
		commandIDs:     make(map[string]string),
		presence:       newPresenceCache(),
		trackerService: cfg.TrackerService,
		uuid:           cfg.UUIDGenerator,
		logger:         cfg.Logger.With().Str("component", "discord").Logger(),
		config:         cfg,
	}

	for _, cmd := range []CommandHandler{
		NewJudgmentCommand(cfg.JudgmentService, cfg.TrackedActivity),
		NewSetAlarmCommand(cfg.GuildService),
		NewSetChannelCommand(cfg.GuildService),
		NewSetGameCommand(cfg.GuildService),
	} {
		bot.commands[cmd.GetName()] = cmd
	}

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handlePresenceUpdate)
	cfg.Session.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// Start opens the gateway connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info().Msg("Bot is now running")
	return nil
}

// Stop removes registered commands and closes the gateway connection
func (b *Bot) Stop() error {
	appID := b.applicationID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("Failed to delete command")
		}
	}

	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured
// guild when one is set and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.applicationID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("Registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	resp, err := b.dispatchCommand(context.Background(), i)
	if err != nil {
		if err := RespondWithError(s, i, renderInternalError()); err != nil {
			b.logger.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("Failed to respond with error")
		}
		return
	}
	if resp == nil {
		return
	}

	if err := RespondWithResponse(s, i, resp); err != nil {
		b.logger.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("Failed to respond to command")
	}
}

// dispatchCommand runs the named command. Internal failures are logged here
// and returned so the caller can answer with a generic error. Unknown
// commands return a nil response.
func (b *Bot) dispatchCommand(ctx context.Context, i *discordgo.InteractionCreate) (*Response, error) {
	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return nil, nil
	}

	logger := b.logger.With().
		Str("event_id", b.uuid.NewUUID()).
		Str("command", name).
		Str("guild_id", i.GuildID).
		Logger()

	resp, err := h.Handle(logger.WithContext(ctx), i)
	if err != nil {
		logger.Error().Err(err).Msg("Error handling command")
		return nil, err
	}

	return resp, nil
}

func (b *Bot) handlePresenceUpdate(s *discordgo.Session, p *discordgo.PresenceUpdate) {
	b.processPresence(context.Background(), p.GuildID, &p.Presence)
}

// handleGuildCreate seeds presences delivered with the guild, so users who
// were already playing when the bot connected are tracked.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	for _, p := range g.Presences {
		b.processPresence(context.Background(), g.ID, p)
	}
}

// processPresence turns a presence snapshot into tracker transitions.
// Ends are delivered before starts. A failed transition is reverted in the
// cache so the next snapshot retries it.
func (b *Bot) processPresence(ctx context.Context, guildID string, p *discordgo.Presence) {
	if p == nil || p.User == nil {
		return
	}

	userID, err := parseSnowflake(p.User.ID)
	if err != nil {
		b.logger.Warn().Err(err).Msg("Ignoring presence with invalid user")
		return
	}

	// Guild ID only routes the alarm; zero just means no alarm fires
	gid, _ := parseSnowflake(guildID)

	lock := b.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	started, ended := b.presence.diff(userID, activityNames(p.Activities))
	if len(started) == 0 && len(ended) == 0 {
		return
	}

	logger := b.logger.With().
		Str("event_id", b.uuid.NewUUID()).
		Int64("user_id", userID).
		Str("guild_id", guildID).
		Logger()

	user := b.resolveUser(guildID, p.User)

	for _, name := range ended {
		_, err := b.trackerService.ActivityEnded(ctx, &tracker.ActivityEndedInput{
			UserID:       userID,
			ActivityName: name,
			IsBot:        user.Bot,
		})
		if err != nil {
			logger.Error().Err(err).Str("activity", name).Msg("Failed to end activity")
			b.presence.revert(userID, name, true)
		}
	}

	for _, name := range started {
		_, err := b.trackerService.ActivityStarted(ctx, &tracker.ActivityStartedInput{
			UserID:       userID,
			GuildID:      gid,
			UserName:     displayName(user),
			ActivityName: name,
			IsBot:        user.Bot,
		})
		if err != nil {
			logger.Error().Err(err).Str("activity", name).Msg("Failed to start activity")
			b.presence.revert(userID, name, false)
		}
	}
}

func (b *Bot) lockFor(userID int64) *sync.Mutex {
	return &b.userLocks[uint64(userID)%uint64(len(b.userLocks))]
}

// resolveUser fills in a partial presence user, which often carries only an
// ID, from the member cache. The presence user is kept when the cache misses.
func (b *Bot) resolveUser(guildID string, u *discordgo.User) *discordgo.User {
	if u.Username != "" || b.session.State == nil {
		return u
	}

	member, err := b.session.State.Member(guildID, u.ID)
	if err != nil || member.User == nil {
		return u
	}
	return member.User
}
