package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/utils"
)

func initCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Reset the session counter and total staked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			if err := opts.client().Initialize(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Farm initialized")
			return nil
		},
	}
}

func plantCmd(opts *options) *cobra.Command {
	var stake string

	cmd := &cobra.Command{
		Use:   "plant <identity>",
		Short: "Start a new session, replacing the current record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseStake(stake)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			idx, err := opts.client().Plant(ctx, args[0], amount)
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"identity": args[0], "session_index": idx}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Planted session #%s for %s (stake %s)\n",
					utils.FormatCount(uint64(idx)), args[0], utils.FormatAmount(amount))
			})
		},
	}
	cmd.Flags().StringVar(&stake, flagStake, "", "amount to stake")
	return cmd
}

func workCmd(opts *options) *cobra.Command {
	var (
		nonce uint64
		zeros uint32
	)

	cmd := &cobra.Command{
		Use:   "work <identity>",
		Short: "Submit a nonce and claimed zero run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			accepted, err := opts.client().Work(ctx, args[0], nonce, zeros)
			if err != nil {
				return err
			}
			if err := opts.print(cmd, map[string]any{"identity": args[0], "accepted": accepted}, func() {
				if accepted {
					fmt.Fprintf(cmd.OutOrStdout(), "Work accepted: nonce %d, %d zeros\n", nonce, zeros)
				}
			}); err != nil {
				return err
			}
			if !accepted {
				return errWorkRejected
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "nonce to submit")
	cmd.Flags().Uint32Var(&zeros, "zeros", 0, "claimed zero run")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

func harvestCmd(opts *options) *cobra.Command {
	var session uint32

	cmd := &cobra.Command{
		Use:   "harvest <identity>",
		Short: "Collect the reward for a worked session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			reward, err := opts.client().Harvest(ctx, args[0], session)
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"identity": args[0], "reward": reward}, func() {
				if reward.IsZero() {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to harvest")
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Harvested %s\n", utils.FormatAmount(reward))
			})
		},
	}
	cmd.Flags().Uint32Var(&session, "session", 0, "session index being harvested")
	return cmd
}

func cycleCmd(opts *options) *cobra.Command {
	var (
		stake      string
		difficulty uint32
	)

	cmd := &cobra.Command{
		Use:   "cycle <identity>",
		Short: "Plant, solve, work and harvest in one call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseStake(stake)
			if err != nil {
				return err
			}
			ctx, cancel := opts.context(cmd)
			defer cancel()

			res, err := opts.client().Cycle(ctx, args[0], amount, difficulty)
			if err != nil {
				return err
			}
			return opts.print(cmd, res, func() { printCycle(cmd, res) })
		},
	}
	cmd.Flags().StringVar(&stake, flagStake, "", "amount to stake")
	cmd.Flags().Uint32Var(&difficulty, flagDifficulty, 0, "target zero run (0 uses the server default)")
	return cmd
}

func printCycle(cmd *cobra.Command, res domain.CycleResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session:    #%s\n", utils.FormatCount(uint64(res.SessionIndex)))
	fmt.Fprintf(out, "Stake:      %s\n", utils.FormatAmount(res.Stake))
	if res.Solution != nil {
		fmt.Fprintf(out, "Nonce:      %d (%d zeros, %s attempts)\n",
			res.Solution.Nonce, res.Solution.Zeros, utils.FormatCount(res.Solution.Attempts))
	}
	fmt.Fprintf(out, "Worked:     %t\n", res.Worked)
	fmt.Fprintf(out, "Reward:     %s\n", utils.FormatAmount(res.Reward))
	fmt.Fprintf(out, "Result:     %s\n", res.Message)
}

func solveCmd(opts *options) *cobra.Command {
	var (
		difficulty uint32
		submit     bool
	)

	cmd := &cobra.Command{
		Use:   "solve <identity>",
		Short: "Find a nonce for the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			c := opts.client()
			sol, err := c.Solve(ctx, args[0], difficulty)
			if err != nil {
				return err
			}
			if err := opts.print(cmd, sol, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Nonce %d scores %d zeros after %s attempts\nDigest %s\n",
					sol.Nonce, sol.Zeros, utils.FormatCount(sol.Attempts), sol.Digest)
			}); err != nil {
				return err
			}
			if !submit {
				return nil
			}

			accepted, err := c.Work(ctx, args[0], sol.Nonce, sol.Zeros)
			if err != nil {
				return err
			}
			if !accepted {
				return errWorkRejected
			}
			if !opts.json {
				fmt.Fprintln(cmd.OutOrStdout(), "Work accepted")
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&difficulty, flagDifficulty, 1, "target zero run")
	cmd.Flags().BoolVar(&submit, "submit", false, "submit the nonce as work")
	return cmd
}
