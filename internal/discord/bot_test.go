package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(Config{AppID: "app-1"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = New(Config{Token: "token"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	fake := &MockFarmClient{}
	bot, err := New(Config{Token: "token", AppID: "app-1", Client: fake})
	require.NoError(t, err)
	assert.Same(t, fake, bot.Client)
	assert.Equal(t, DefaultStatus, bot.status)
	assert.NotNil(t, bot.Registry)

	bot, err = New(Config{Token: "token", AppID: "app-1", APIURL: "http://farm:8080", Status: "harvesting"})
	require.NoError(t, err)
	assert.NotNil(t, bot.Client)
	assert.Equal(t, "harvesting", bot.status)
}

func TestInteractionCreate_DispatchesCommands(t *testing.T) {
	tc := SetupTestContext(t)

	var pinged int
	bot := &Bot{Session: tc.Session, Client: tc.Client, Registry: NewCommandRegistry()}
	tc.Client.HealthFunc = func(ctx context.Context) error {
		pinged++
		return nil
	}
	bot.Registry.Register(PingCommand())

	bot.interactionCreate(tc.Session, newInteraction("ping"))
	assert.Equal(t, 1, pinged)

	autocomplete := newInteraction("ping")
	autocomplete.Type = discordgo.InteractionApplicationCommandAutocomplete
	bot.interactionCreate(tc.Session, autocomplete)
	assert.Equal(t, 1, pinged)
}

func TestPingContent(t *testing.T) {
	assert.Equal(t, "Pong! 🏓 gateway 40ms, farm API 3ms.", pingContent(40*time.Millisecond, 3200*time.Microsecond, nil))
	assert.Equal(t, "Pong! 🏓 gateway 0s, the farm API is not answering.", pingContent(0, time.Second, errors.New("refused")))
}
