package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// MockFarmClient is a function-field fake of FarmClient
type MockFarmClient struct {
	PlantFunc     func(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error)
	WorkFunc      func(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error)
	HarvestFunc   func(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error)
	CycleFunc     func(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error)
	FarmerFunc    func(ctx context.Context, identity string) (domain.FarmerRecord, error)
	ChallengeFunc func(ctx context.Context, identity string) (domain.WorkChallenge, error)
	SolveFunc     func(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error)
	HealthFunc    func(ctx context.Context) error
}

func (m *MockFarmClient) Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
	if m.PlantFunc != nil {
		return m.PlantFunc(ctx, identity, stake)
	}
	return 1, nil
}

func (m *MockFarmClient) Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
	if m.WorkFunc != nil {
		return m.WorkFunc(ctx, identity, nonce, zerosClaimed)
	}
	return true, nil
}

func (m *MockFarmClient) Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
	if m.HarvestFunc != nil {
		return m.HarvestFunc(ctx, identity, sessionIndex)
	}
	return sdkmath.NewInt(1000), nil
}

func (m *MockFarmClient) Cycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
	if m.CycleFunc != nil {
		return m.CycleFunc(ctx, identity, stake, difficulty)
	}
	return domain.CycleResult{Identity: identity, Stake: stake, Difficulty: difficulty, Reward: sdkmath.ZeroInt()}, nil
}

func (m *MockFarmClient) Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error) {
	if m.FarmerFunc != nil {
		return m.FarmerFunc(ctx, identity)
	}
	return domain.FarmerRecord{
		Identity:     identity,
		Balance:      sdkmath.ZeroInt(),
		TotalEarned:  sdkmath.ZeroInt(),
		SessionIndex: 1,
		PlantedAt:    100,
	}, nil
}

func (m *MockFarmClient) Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error) {
	if m.ChallengeFunc != nil {
		return m.ChallengeFunc(ctx, identity)
	}
	return domain.WorkChallenge{Identity: identity, SessionIndex: 1, Phase: domain.PhasePlanted}, nil
}

func (m *MockFarmClient) Solve(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, identity, difficulty)
	}
	return domain.Solution{Nonce: 7, Zeros: difficulty, Attempts: 1, Digest: "0000000100000000000000070000000000000000"}, nil
}

func (m *MockFarmClient) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// roundTripFunc intercepts the Discord REST calls a handler makes
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

type editBody struct {
	Content string                    `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
}

// TestContext is a Discord session whose REST traffic is recorded instead of sent
type TestContext struct {
	Session *discordgo.Session
	Client  *MockFarmClient

	mu       sync.Mutex
	requests []capturedRequest
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{Session: session, Client: &MockFarmClient{}}
	session.Client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
		}
		tc.mu.Lock()
		tc.requests = append(tc.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
		tc.mu.Unlock()

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("{}")),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})}

	return tc
}

// Run invokes a command handler against the recorded session
func (tc *TestContext) Run(handler CommandHandler, i *discordgo.InteractionCreate) {
	handler(tc.Session, i, tc.Client)
}

// LastEdit decodes the most recent edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) editBody {
	t.Helper()

	tc.mu.Lock()
	defer tc.mu.Unlock()

	for idx := len(tc.requests) - 1; idx >= 0; idx-- {
		req := tc.requests[idx]
		if req.Method != http.MethodPatch {
			continue
		}
		var body editBody
		require.NoError(t, json.Unmarshal(req.Body, &body))
		return body
	}
	t.Fatal("no response edit recorded")
	return editBody{}
}

// LastEmbed returns the single embed of the most recent edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()

	body := tc.LastEdit(t)
	require.Len(t, body.Embeds, 1)
	return body.Embeds[0]
}

func newInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "900",
		AppID: "app-1",
		Token: "interaction-token",
		Type:  discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "42", Username: "farmer"},
		},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func intOpt(name string, v int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func fieldValue(embed *discordgo.MessageEmbed, name string) string {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
