package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/KaleFarm_Go/internal/handler"
	"github.com/osse101/KaleFarm_Go/internal/utils"
)

func minerCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miner",
		Short: "Background mining on the server",
	}

	cmd.AddCommand(
		minerStartCmd(opts),
		minerStopCmd(opts),
		minerStatsCmd(opts),
	)

	return cmd
}

func minerStartCmd(opts *options) *cobra.Command {
	var (
		stake      string
		difficulty uint32
		interval   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "start <identity>",
		Short: "Start a mining loop for the identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseStake(stake)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			if err := opts.client().StartMining(ctx, args[0], amount, difficulty, interval); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mining started for %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&stake, flagStake, "", "amount staked each cycle")
	cmd.Flags().Uint32Var(&difficulty, flagDifficulty, 0, "target zero run (0 uses the server default)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between cycles (0 uses the server default)")
	return cmd
}

func minerStopCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <identity>",
		Short: "Stop the identity's mining loop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			stats, err := opts.client().StopMining(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, stats, func() { printStats(cmd, stats) })
		},
	}
}

func minerStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <identity>",
		Short: "Show mining statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			stats, err := opts.client().MiningStats(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, stats, func() { printStats(cmd, stats) })
		},
	}
}

func printStats(cmd *cobra.Command, s handler.MinerStatsResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Identity:     %s\n", s.Identity)
	fmt.Fprintf(out, "Active:       %t\n", s.Active)
	fmt.Fprintf(out, "Running for:  %s\n", utils.FormatSince(s.StartedAt, time.Now()))
	fmt.Fprintf(out, "Cycles:       %s (%s ok, %s failed)\n",
		utils.FormatCount(s.Cycles), utils.FormatCount(s.SuccessfulCycles), utils.FormatCount(s.FailedCycles))
	fmt.Fprintf(out, "Success rate: %s\n", utils.FormatRate(s.SuccessRate))
	fmt.Fprintf(out, "Total reward: %s\n", utils.FormatAmount(s.TotalReward))
	fmt.Fprintf(out, "Best run:     %d zeros\n", s.BestZeros)
	if s.LastError != "" {
		fmt.Fprintf(out, "Last error:   %s\n", s.LastError)
	}
}
