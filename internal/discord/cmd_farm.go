package discord

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/utils"
)

const (
	optStake      = "stake"
	optDifficulty = "difficulty"
)

var minDifficulty = float64(0)

func stakeOptionDef() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        optStake,
		Description: "Amount to stake (default: 0)",
	}
}

func difficultyOptionDef() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        optDifficulty,
		Description: fmt.Sprintf("Leading zero run to search for (default: %d)", DefaultWorkDifficulty),
		MinValue:    &minDifficulty,
		MaxValue:    MaxDifficulty,
	}
}

func stakeOption(i *discordgo.InteractionCreate) sdkmath.Int {
	if opt, ok := optionMap(i)[optStake]; ok {
		return sdkmath.NewInt(opt.IntValue())
	}
	return sdkmath.ZeroInt()
}

func difficultyOption(i *discordgo.InteractionCreate) uint32 {
	if opt, ok := optionMap(i)[optDifficulty]; ok {
		v := opt.IntValue()
		if v >= 0 && v <= MaxDifficulty {
			return uint32(v)
		}
	}
	return DefaultWorkDifficulty
}

// PlantCommand starts a new session for the caller
func PlantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plant",
		Description: "Plant a new crop, replacing your current one",
		Options:     []*discordgo.ApplicationCommandOption{stakeOptionDef()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		handleEmbedResponse(s, i, func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error) {
			stake := stakeOption(i)
			idx, err := client.Plant(ctx, identity, stake)
			if err != nil {
				return nil, err
			}
			return createEmbed("🌱 Planted",
				fmt.Sprintf("Session **#%s** is growing. Use `/work` next.", utils.FormatCount(uint64(idx))),
				ColorPlant,
				inlineField("Stake", utils.FormatAmount(stake)),
			), nil
		})
	}

	return cmd, handler
}

// WorkCommand solves the caller's challenge and submits the nonce
func WorkCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "work",
		Description: "Search for a nonce and work your crop",
		Options:     []*discordgo.ApplicationCommandOption{difficultyOptionDef()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		handleEmbedResponse(s, i, func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error) {
			rec, err := client.Farmer(ctx, identity)
			if err != nil {
				return nil, err
			}
			if rec.Worked {
				return createEmbed("⛏️ Already Worked",
					fmt.Sprintf("Session **#%s** is ready. Use `/harvest`.", utils.FormatCount(uint64(rec.SessionIndex))),
					ColorWarn), nil
			}

			sol, err := client.Solve(ctx, identity, difficultyOption(i))
			if err != nil {
				return nil, err
			}
			accepted, err := client.Work(ctx, identity, sol.Nonce, sol.Zeros)
			if err != nil {
				return nil, err
			}

			fields := []*discordgo.MessageEmbedField{
				inlineField("Zeros", utils.FormatCount(uint64(sol.Zeros))),
				inlineField("Attempts", utils.FormatCount(sol.Attempts)),
				inlineField("Digest", "`"+utils.ShortDigest(sol.Digest, digestPreview)+"`"),
			}
			if !accepted {
				return createEmbed("⛏️ Work Rejected",
					"The farm moved on before the nonce landed. Try `/work` again.",
					ColorWarn, fields...), nil
			}
			return createEmbed("⛏️ Worked",
				fmt.Sprintf("Nonce `%d` accepted. Use `/harvest` to collect.", sol.Nonce),
				ColorWork, fields...), nil
		})
	}

	return cmd, handler
}

// HarvestCommand collects the reward for the caller's worked session
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "harvest",
		Description: "Harvest your worked crop",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		handleEmbedResponse(s, i, func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error) {
			rec, err := client.Farmer(ctx, identity)
			if err != nil {
				return nil, err
			}
			if !rec.Worked {
				return createEmbed("🌾 Not Ready", "Your crop has not been worked yet. Use `/work` first.", ColorWarn), nil
			}

			reward, err := client.Harvest(ctx, identity, rec.SessionIndex)
			if err != nil {
				return nil, err
			}
			if !reward.IsPositive() {
				return createEmbed("🌾 Nothing to Harvest", "This session was already harvested. Use `/plant` to start again.", ColorWarn), nil
			}

			return createEmbed("🌾 Harvested",
				fmt.Sprintf("You earned **%s**.", utils.FormatAmount(reward)),
				ColorHarvest,
				inlineField("Session", utils.FormatCount(uint64(rec.SessionIndex))),
				inlineField("Total Earned", utils.FormatAmount(rec.TotalEarned.Add(reward))),
			), nil
		})
	}

	return cmd, handler
}

// FarmCommand runs a full plant, work and harvest cycle
func FarmCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "farm",
		Description: "Plant, work and harvest in one go",
		Options:     []*discordgo.ApplicationCommandOption{stakeOptionDef(), difficultyOptionDef()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		handleEmbedResponse(s, i, func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error) {
			res, err := client.Cycle(ctx, identity, stakeOption(i), difficultyOption(i))
			if err != nil {
				return nil, err
			}
			return cycleEmbed(res), nil
		})
	}

	return cmd, handler
}

func cycleEmbed(res domain.CycleResult) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		inlineField("Session", utils.FormatCount(uint64(res.SessionIndex))),
		inlineField("Stake", utils.FormatAmount(res.Stake)),
	}
	if res.Solution != nil {
		fields = append(fields,
			inlineField("Zeros", utils.FormatCount(uint64(res.Solution.Zeros))),
			inlineField("Attempts", utils.FormatCount(res.Solution.Attempts)),
		)
	}

	if !res.Succeeded() {
		return createEmbed("🚜 Cycle Incomplete", res.Message, ColorWarn, fields...)
	}
	fields = append(fields, inlineField("Reward", utils.FormatAmount(res.Reward)))
	return createEmbed("🚜 Cycle Complete",
		fmt.Sprintf("You earned **%s**.", utils.FormatAmount(res.Reward)),
		ColorCycle, fields...)
}

// FarmStatusCommand shows the caller's record and current challenge
func FarmStatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "farm-status",
		Description: "Show your farm record",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client FarmClient) {
		handleEmbedResponse(s, i, func(ctx context.Context, identity string) (*discordgo.MessageEmbed, error) {
			rec, err := client.Farmer(ctx, identity)
			if err != nil {
				return nil, err
			}
			ch, err := client.Challenge(ctx, identity)
			if err != nil {
				return nil, err
			}

			return createEmbed("📋 Farm Status",
				fmt.Sprintf("`%s` is **%s**.", identity, rec.Phase()),
				ColorStatus,
				inlineField("Session", utils.FormatCount(uint64(rec.SessionIndex))),
				inlineField("Stake", utils.FormatAmount(rec.Balance)),
				inlineField("Total Earned", utils.FormatAmount(rec.TotalEarned)),
				inlineField("Zeros Claimed", utils.FormatCount(uint64(rec.ZerosClaimed))),
				inlineField("Entropy", utils.FormatCount(ch.Entropy)),
			), nil
		})
	}

	return cmd, handler
}

// Commands lists every farm command factory
func Commands() []func() (*discordgo.ApplicationCommand, CommandHandler) {
	return []func() (*discordgo.ApplicationCommand, CommandHandler){
		PingCommand,
		PlantCommand,
		WorkCommand,
		HarvestCommand,
		FarmCommand,
		FarmStatusCommand,
	}
}
