package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/osse101/KaleFarm_Go/internal/client"
	"github.com/osse101/KaleFarm_Go/internal/config"
)

const (
	flagAPIURL  = "api-url"
	flagAPIKey  = "api-key"
	flagTimeout = "timeout"
	flagRetries = "retries"
	flagJSON    = "json"

	flagStake      = "stake"
	flagDifficulty = "difficulty"
)

var errWorkRejected = errors.New("work rejected")

// options are the persistent flags shared by every subcommand
type options struct {
	apiURL  string
	apiKey  string
	timeout time.Duration
	retries uint64
	json    bool
}

func (o *options) client() *client.Client {
	return client.New(o.apiURL, o.apiKey,
		client.WithHTTPClient(&http.Client{Timeout: o.timeout}),
		client.WithRetries(o.retries, client.DefaultRetryDelay),
	)
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

// print writes v as indented JSON when --json is set, otherwise runs text
func (o *options) print(cmd *cobra.Command, v any, text func()) error {
	if !o.json {
		text()
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewRootCmd builds the farmctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "farmctl",
		Short: "KaleFarm command-line client",
		Long: `farmctl talks to a KaleFarm server.

A farmer plants a session, works it with a proof-of-work nonce and
harvests the reward. cycle runs all three steps in one call, and
miner keeps cycling in the background on the server.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, flagAPIURL, envOr("API_URL", config.DefaultAPIURL), "farm API base URL")
	flags.StringVar(&opts.apiKey, flagAPIKey, os.Getenv("API_KEY"), "API key sent as X-API-Key")
	flags.DurationVar(&opts.timeout, flagTimeout, client.DefaultTimeout, "per-command timeout")
	flags.Uint64Var(&opts.retries, flagRetries, client.DefaultMaxRetries, "retries on transport errors and 5xx")
	flags.BoolVar(&opts.json, flagJSON, false, "print results as JSON")

	rootCmd.AddCommand(
		initCmd(opts),
		plantCmd(opts),
		workCmd(opts),
		harvestCmd(opts),
		cycleCmd(opts),
		solveCmd(opts),
		queryCmd(opts),
		minerCmd(opts),
		versionCmd(opts),
	)

	return rootCmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseStake(s string) (sdkmath.Int, error) {
	if s == "" {
		return sdkmath.ZeroInt(), nil
	}
	v, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid stake %q", s)
	}
	return v, nil
}

func versionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context(cmd)
			defer cancel()

			info, err := opts.client().Version(ctx)
			if err != nil {
				return err
			}
			return opts.print(cmd, info, func() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s (%s)\n", info.Service, info.Version, info.GoVersion)
				r := info.Rules
				fmt.Fprintf(out, "reward %d + %d/zero + 1 per %ds, max difficulty %d\n",
					r.BaseReward, r.PerZeroBonus, r.SecondsPerUnit, r.MaxDifficulty)
			})
		},
	}
}
