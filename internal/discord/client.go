package discord

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// FarmClient is the part of the farm API the bot calls. *client.Client satisfies it.
type FarmClient interface {
	Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error)
	Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error)
	Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error)
	Cycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error)
	Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error)
	Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error)
	Solve(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error)
	Health(ctx context.Context) error
}

// IdentityFor maps a Discord user to their farm identity
func IdentityFor(user *discordgo.User) string {
	return IdentityPrefix + user.ID
}
