package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/KaleFarm_Go/internal/utils"
)

func queryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read farm and farmer state",
	}

	cmd.AddCommand(
		queryBalanceCmd(opts),
		queryEarnedCmd(opts),
		queryStatusCmd(opts),
		queryFarmerCmd(opts),
		queryChallengeCmd(opts),
		queryStakedCmd(opts),
		querySessionCmd(opts),
	)

	return cmd
}

func queryBalanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <identity>",
		Short: "Stake held by the farmer's current record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			v, err := opts.client().Balance(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"identity": args[0], "amount": v}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), utils.FormatAmount(v))
			})
		},
	}
}

func queryEarnedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "earned <identity>",
		Short: "Total rewards earned by the farmer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			v, err := opts.client().TotalEarned(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"identity": args[0], "amount": v}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), utils.FormatAmount(v))
			})
		},
	}
}

func queryStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status <identity>",
		Short: "Planted, worked and harvested flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			st, err := opts.client().Status(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, st, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "planted=%t worked=%t harvested=%t\n", st.Planted, st.Worked, st.Harvested)
			})
		},
	}
}

func queryFarmerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "farmer <identity>",
		Short: "Full farmer record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			rec, err := opts.client().Farmer(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, rec, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Identity:     %s\n", rec.Identity)
				fmt.Fprintf(out, "Phase:        %s\n", rec.Phase())
				fmt.Fprintf(out, "Session:      #%s\n", utils.FormatCount(uint64(rec.SessionIndex)))
				fmt.Fprintf(out, "Planted at:   %d\n", rec.PlantedAt)
				fmt.Fprintf(out, "Balance:      %s\n", utils.FormatAmount(rec.Balance))
				fmt.Fprintf(out, "Total earned: %s\n", utils.FormatAmount(rec.TotalEarned))
				if rec.Worked {
					fmt.Fprintf(out, "Nonce:        %d (%d zeros)\n", rec.Nonce, rec.ZerosClaimed)
				}
			})
		},
	}
}

func queryChallengeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "challenge <identity>",
		Short: "Session and entropy a solver needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			ch, err := opts.client().Challenge(ctx, args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd, ch, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "session=%d entropy=%d phase=%s\n", ch.SessionIndex, ch.Entropy, ch.Phase)
			})
		},
	}
}

func queryStakedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "staked",
		Short: "Total staked across all farmers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			v, err := opts.client().TotalStaked(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"total_staked": v}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), utils.FormatAmount(v))
			})
		},
	}
}

func querySessionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Current session index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			idx, err := opts.client().SessionIndex(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, map[string]any{"session_index": idx}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), idx)
			})
		},
	}
}
