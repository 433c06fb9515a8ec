package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/KaleFarm_Go/internal/config"
	"github.com/osse101/KaleFarm_Go/internal/discord"
	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// DefaultHealthPort serves the bot's /healthz
const DefaultHealthPort = "8082"

func main() {
	_ = godotenv.Load()

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "kalefarm-discord", cfg.Version, cfg.Environment))
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:  cfg.DiscordToken,
		AppID:  cfg.DiscordAppID,
		APIURL: cfg.APIURL,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	healthServer := discord.NewHTTPServer(healthPort, bot)
	healthServer.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := healthServer.Stop(ctx); err != nil {
			slog.Error("Discord health server shutdown failed", "error", err)
		}
	}()

	for _, factory := range discord.Commands() {
		bot.Registry.Register(factory())
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered earlier keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(context.Background()); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
