package discord

import (
	"context"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KaleFarm_Go/internal/client"
	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/logger"
)

func TestPlantCommand(t *testing.T) {
	t.Run("default stake", func(t *testing.T) {
		tc := SetupTestContext(t)
		var gotIdentity string
		var gotStake sdkmath.Int
		tc.Client.PlantFunc = func(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
			gotIdentity, gotStake = identity, stake
			return 3, nil
		}

		cmd, handler := PlantCommand()
		assert.Equal(t, "plant", cmd.Name)
		tc.Run(handler, newInteraction("plant"))

		assert.Equal(t, "discord:42", gotIdentity)
		assert.True(t, gotStake.IsZero())

		embed := tc.LastEmbed(t)
		assert.Equal(t, "🌱 Planted", embed.Title)
		assert.Contains(t, embed.Description, "#3")
		assert.Equal(t, "0", fieldValue(embed, "Stake"))
	})

	t.Run("explicit stake", func(t *testing.T) {
		tc := SetupTestContext(t)
		_, handler := PlantCommand()
		tc.Run(handler, newInteraction("plant", intOpt(optStake, 1500)))

		assert.Equal(t, "1,500", fieldValue(tc.LastEmbed(t), "Stake"))
	})
}

func TestWorkCommand(t *testing.T) {
	t.Run("solves and submits", func(t *testing.T) {
		tc := SetupTestContext(t)
		var solveDifficulty uint32
		var workNonce uint64
		var workZeros uint32
		tc.Client.SolveFunc = func(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
			solveDifficulty = difficulty
			return domain.Solution{Nonce: 12345, Zeros: 9, Attempts: 70000, Digest: "000000000000000000000000"}, nil
		}
		tc.Client.WorkFunc = func(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
			workNonce, workZeros = nonce, zerosClaimed
			return true, nil
		}

		_, handler := WorkCommand()
		tc.Run(handler, newInteraction("work", intOpt(optDifficulty, 9)))

		assert.Equal(t, uint32(9), solveDifficulty)
		assert.Equal(t, uint64(12345), workNonce)
		assert.Equal(t, uint32(9), workZeros)

		embed := tc.LastEmbed(t)
		assert.Equal(t, "⛏️ Worked", embed.Title)
		assert.Equal(t, "70,000", fieldValue(embed, "Attempts"))
		assert.Equal(t, "`000000000000…`", fieldValue(embed, "Digest"))
	})

	t.Run("default difficulty", func(t *testing.T) {
		tc := SetupTestContext(t)
		var solveDifficulty uint32
		tc.Client.SolveFunc = func(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
			solveDifficulty = difficulty
			return domain.Solution{Zeros: difficulty}, nil
		}

		_, handler := WorkCommand()
		tc.Run(handler, newInteraction("work"))

		assert.Equal(t, uint32(DefaultWorkDifficulty), solveDifficulty)
	})

	t.Run("already worked skips the solve", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.FarmerFunc = func(ctx context.Context, identity string) (domain.FarmerRecord, error) {
			return domain.FarmerRecord{Identity: identity, SessionIndex: 2, PlantedAt: 1, Worked: true}, nil
		}
		tc.Client.SolveFunc = func(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
			t.Fatal("solve should not run")
			return domain.Solution{}, nil
		}

		_, handler := WorkCommand()
		tc.Run(handler, newInteraction("work"))

		assert.Equal(t, "⛏️ Already Worked", tc.LastEmbed(t).Title)
	})

	t.Run("rejected", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.WorkFunc = func(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
			return false, nil
		}

		_, handler := WorkCommand()
		tc.Run(handler, newInteraction("work"))

		embed := tc.LastEmbed(t)
		assert.Equal(t, "⛏️ Work Rejected", embed.Title)
		assert.Equal(t, ColorWarn, embed.Color)
	})

	t.Run("no solution", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.SolveFunc = func(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
			return domain.Solution{}, &client.APIError{StatusCode: http.StatusUnprocessableEntity}
		}

		_, handler := WorkCommand()
		tc.Run(handler, newInteraction("work"))

		assert.Equal(t, MsgNoSolution, tc.LastEdit(t).Content)
	})
}

func TestHarvestCommand(t *testing.T) {
	worked := func(ctx context.Context, identity string) (domain.FarmerRecord, error) {
		return domain.FarmerRecord{
			Identity:     identity,
			Balance:      sdkmath.ZeroInt(),
			TotalEarned:  sdkmath.NewInt(1000),
			SessionIndex: 4,
			PlantedAt:    1,
			Worked:       true,
		}, nil
	}

	t.Run("not worked", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.HarvestFunc = func(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
			t.Fatal("harvest should not run")
			return sdkmath.Int{}, nil
		}

		_, handler := HarvestCommand()
		tc.Run(handler, newInteraction("harvest"))

		assert.Equal(t, "🌾 Not Ready", tc.LastEmbed(t).Title)
	})

	t.Run("reward", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.FarmerFunc = worked
		var gotIndex uint32
		tc.Client.HarvestFunc = func(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
			gotIndex = sessionIndex
			return sdkmath.NewInt(1307), nil
		}

		_, handler := HarvestCommand()
		tc.Run(handler, newInteraction("harvest"))

		assert.Equal(t, uint32(4), gotIndex)
		embed := tc.LastEmbed(t)
		assert.Equal(t, "🌾 Harvested", embed.Title)
		assert.Contains(t, embed.Description, "1,307")
		assert.Equal(t, "2,307", fieldValue(embed, "Total Earned"))
	})

	t.Run("already harvested", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.FarmerFunc = worked
		tc.Client.HarvestFunc = func(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
			return sdkmath.ZeroInt(), nil
		}

		_, handler := HarvestCommand()
		tc.Run(handler, newInteraction("harvest"))

		assert.Equal(t, "🌾 Nothing to Harvest", tc.LastEmbed(t).Title)
	})
}

func TestFarmCommand(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.CycleFunc = func(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
			assert.Equal(t, "250", stake.String())
			assert.Equal(t, uint32(3), difficulty)
			return domain.CycleResult{
				Identity:     identity,
				SessionIndex: 8,
				Stake:        stake,
				Difficulty:   difficulty,
				Solved:       true,
				Solution:     &domain.Solution{Zeros: 4, Attempts: 1200},
				Worked:       true,
				Reward:       sdkmath.NewInt(1401),
				Message:      "farm cycle complete",
			}, nil
		}

		_, handler := FarmCommand()
		tc.Run(handler, newInteraction("farm", intOpt(optStake, 250), intOpt(optDifficulty, 3)))

		embed := tc.LastEmbed(t)
		assert.Equal(t, "🚜 Cycle Complete", embed.Title)
		assert.Equal(t, "1,401", fieldValue(embed, "Reward"))
		assert.Equal(t, "1,200", fieldValue(embed, "Attempts"))
	})

	t.Run("incomplete", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Client.CycleFunc = func(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
			return domain.CycleResult{Identity: identity, Stake: stake, Reward: sdkmath.ZeroInt(), Message: "no valid nonce found"}, nil
		}

		_, handler := FarmCommand()
		tc.Run(handler, newInteraction("farm"))

		embed := tc.LastEmbed(t)
		assert.Equal(t, "🚜 Cycle Incomplete", embed.Title)
		assert.Equal(t, "no valid nonce found", embed.Description)
		assert.Empty(t, fieldValue(embed, "Reward"))
	})
}

func TestFarmStatusCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Client.FarmerFunc = func(ctx context.Context, identity string) (domain.FarmerRecord, error) {
		return domain.FarmerRecord{
			Identity:     identity,
			Balance:      sdkmath.NewInt(5000),
			TotalEarned:  sdkmath.NewInt(12000),
			SessionIndex: 2,
			PlantedAt:    10,
			Worked:       true,
			ZerosClaimed: 6,
		}, nil
	}
	tc.Client.ChallengeFunc = func(ctx context.Context, identity string) (domain.WorkChallenge, error) {
		return domain.WorkChallenge{Identity: identity, SessionIndex: 2, Entropy: 1234567}, nil
	}

	_, handler := FarmStatusCommand()
	tc.Run(handler, newInteraction("farm-status"))

	embed := tc.LastEmbed(t)
	assert.Contains(t, embed.Description, "discord:42")
	assert.Contains(t, embed.Description, string(domain.PhaseWorked))
	assert.Equal(t, "5,000", fieldValue(embed, "Stake"))
	assert.Equal(t, "12,000", fieldValue(embed, "Total Earned"))
	assert.Equal(t, "1,234,567", fieldValue(embed, "Entropy"))
}

func TestCommand_UnknownFarmer(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Client.FarmerFunc = func(ctx context.Context, identity string) (domain.FarmerRecord, error) {
		return domain.FarmerRecord{}, &client.APIError{StatusCode: http.StatusNotFound, Message: "Farmer not found. Plant first."}
	}

	_, handler := FarmStatusCommand()
	tc.Run(handler, newInteraction("farm-status"))

	assert.Equal(t, MsgNotPlanted, tc.LastEdit(t).Content)
}

func TestCommand_RequestIDFromInteraction(t *testing.T) {
	tc := SetupTestContext(t)
	var gotID string
	tc.Client.PlantFunc = func(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
		gotID = logger.GetRequestID(ctx)
		return 1, nil
	}

	_, handler := PlantCommand()
	tc.Run(handler, newInteraction("plant"))

	assert.Equal(t, "discord-900", gotID)
}

func TestDifficultyOption(t *testing.T) {
	assert.Equal(t, uint32(DefaultWorkDifficulty), difficultyOption(newInteraction("work")))
	assert.Equal(t, uint32(0), difficultyOption(newInteraction("work", intOpt(optDifficulty, 0))))
	assert.Equal(t, uint32(DefaultWorkDifficulty), difficultyOption(newInteraction("work", intOpt(optDifficulty, 99))))
}

func TestCommands_UniqueNames(t *testing.T) {
	registry := NewCommandRegistry()
	for _, factory := range Commands() {
		registry.Register(factory())
	}

	defs := registry.Definitions()
	require.Len(t, defs, len(Commands()))
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"farm", "farm-status", "harvest", "ping", "plant", "work"}, names)
}

func TestIdentityFor(t *testing.T) {
	assert.Equal(t, "discord:1234", IdentityFor(&discordgo.User{ID: "1234"}))
}
