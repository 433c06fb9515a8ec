package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KaleFarm_Go/internal/client"
	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		RecordCommand()
		h(s, i, client)
	}
}

// Definitions returns the registered commands sorted by name
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(a, b int) bool { return cmds[a].Name < cmds[b].Name })
	return cmds
}

// RegisterCommands syncs the registry with Discord, overwriting only when the set changed
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	desired := registry.Definitions()

	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existing, desired) {
			slog.Info("Commands unchanged, skipping registration", "count", len(existing))
			return nil
		}
		slog.Info("Commands changed, updating", "existing", len(existing), "desired", len(desired))
	} else {
		slog.Info("Force update enabled, replacing all commands", "count", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated", "count", len(desired))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	// Build map of existing commands by name
	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	// Check each desired command exists and matches
	for _, desired := range desired {
		existing, ok := existingMap[desired.Name]
		if !ok {
			return false
		}
		if !commandEqual(existing, desired) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	// Compare permissions
	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && b.DefaultMemberPermissions != nil {
		if *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
			return false
		}
	}

	// Compare options length
	if len(a.Options) != len(b.Options) {
		return false
	}

	// Compare each option
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if a.MaxValue != b.MaxValue {
		return false
	}
	if (a.MinValue == nil) != (b.MinValue == nil) || (a.MinValue != nil && *a.MinValue != *b.MinValue) {
		return false
	}

	// Compare choices if present
	if len(a.Choices) != len(b.Choices) {
		return false
	}

	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}

	return true
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// handleEmbedResponse defers the response, runs action and sends its embed or a friendly error
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error),
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := commandContext(i)
	defer cancel()

	identity := IdentityFor(getInteractionUser(i))
	embed, err := action(ctx, identity)
	if err != nil {
		logger.FromContext(ctx).Error("Command failed",
			"command", i.ApplicationCommandData().Name,
			"identity", identity,
			"error", err)
		respondFriendlyError(s, i, err)
		return
	}

	sendEmbed(s, i, embed)
}

// commandContext bounds a command and tags API calls with the interaction ID
func commandContext(i *discordgo.InteractionCreate) (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), "discord-"+i.ID)
	return context.WithTimeout(ctx, commandTimeout)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction in a guild or a DM
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// respondFriendlyError turns an API error into a readable message
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API failures to the messages players see
func formatFriendlyError(err error) string {
	switch {
	case err == nil:
		return MsgGenericError
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimedOut
	case client.IsStatus(err, http.StatusNotFound):
		return MsgNotPlanted
	case client.IsStatus(err, http.StatusUnprocessableEntity):
		return MsgNoSolution
	case client.IsStatus(err, http.StatusConflict):
		return MsgAlreadyBusy
	case client.IsStatus(err, http.StatusServiceUnavailable), client.IsStatus(err, http.StatusBadGateway):
		return MsgServiceDown
	case client.IsStatus(err, http.StatusGatewayTimeout):
		return MsgTimedOut
	case client.IsStatus(err, http.StatusBadRequest):
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && strings.Contains(strings.ToLower(apiErr.Message), "difficulty") {
			return MsgDifficultyHigh
		}
		return MsgInvalidInput
	}
	return MsgGenericError
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with the KaleFarm footer
func createEmbed(title, description string, color int, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterKaleFarm,
		},
	}
}

// inlineField is a short embed field shown side by side
func inlineField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}
