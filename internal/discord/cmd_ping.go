package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports gateway latency and whether the farm API answers
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and the farm are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		started := time.Now()
		apiErr := client.Health(ctx)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: pingContent(s.HeartbeatLatency(), time.Since(started), apiErr),
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

func pingContent(gateway, api time.Duration, apiErr error) string {
	if apiErr != nil {
		return fmt.Sprintf("Pong! 🏓 gateway %s, the farm API is not answering.", gateway.Round(time.Millisecond))
	}
	return fmt.Sprintf("Pong! 🏓 gateway %s, farm API %s.", gateway.Round(time.Millisecond), api.Round(time.Millisecond))
}
