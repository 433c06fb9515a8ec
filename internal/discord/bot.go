package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KaleFarm_Go/internal/client"
)

// ErrMissingCredentials is returned by New without a token or application ID
var ErrMissingCredentials = errors.New("discord token and application ID are required")

// Bot relays slash commands to the farm API
type Bot struct {
	Session  *discordgo.Session
	Client   FarmClient
	AppID    string
	Registry *CommandRegistry
	status   string
}

// Config holds the bot configuration. Client overrides the HTTP client built from APIURL.
type Config struct {
	Token  string
	AppID  string
	APIURL string
	APIKey string
	Status string
	Client FarmClient
}

func New(cfg Config) (*Bot, error) {
	if cfg.Token == "" || cfg.AppID == "" {
		return nil, ErrMissingCredentials
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	farm := cfg.Client
	if farm == nil {
		farm = client.New(cfg.APIURL, cfg.APIKey)
	}
	status := cfg.Status
	if status == "" {
		status = DefaultStatus
	}

	return &Bot{
		Session:  s,
		Client:   farm,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		status:   status,
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	slog.Info("Discord bot connected", "app_id", b.AppID)
	return nil
}

func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// Run keeps the bot connected until ctx ends or the process is signalled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("Discord bot shutting down")
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
	if err := s.UpdateGameStatus(0, b.status); err != nil {
		slog.Warn("Failed to set presence", "error", err)
	}
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		slog.Debug("Ignoring interaction", "type", i.Type.String())
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
