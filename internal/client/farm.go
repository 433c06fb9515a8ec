package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/handler"
)

func identityQuery(identity string) url.Values {
	return url.Values{"identity": []string{identity}}
}

func amountString(amount sdkmath.Int) string {
	if amount.IsNil() {
		return ""
	}
	return amount.String()
}

// Initialize resets the global counters
func (c *Client) Initialize(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, pathInitialize, nil, nil, nil)
}

// Plant starts a new session and returns its index
func (c *Client) Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
	var resp handler.PlantResponse
	err := c.do(ctx, http.MethodPost, pathPlant, nil, handler.PlantRequest{
		Identity: identity,
		Stake:    amountString(stake),
	}, &resp)
	return resp.SessionIndex, err
}

// Work submits a nonce and reports whether it was accepted
func (c *Client) Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
	var resp handler.WorkResponse
	err := c.do(ctx, http.MethodPost, pathWork, nil, handler.WorkRequest{
		Identity:     identity,
		Nonce:        nonce,
		ZerosClaimed: zerosClaimed,
	}, &resp)
	return resp.Accepted, err
}

// Harvest claims the session reward
func (c *Client) Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
	var resp handler.HarvestResponse
	err := c.do(ctx, http.MethodPost, pathHarvest, nil, handler.HarvestRequest{
		Identity:     identity,
		SessionIndex: sessionIndex,
	}, &resp)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return resp.Reward, nil
}

// Cycle runs plant, solve, work and harvest server side
func (c *Client) Cycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
	var result domain.CycleResult
	err := c.do(ctx, http.MethodPost, pathCycle, nil, handler.CycleRequest{
		Identity:   identity,
		Stake:      amountString(stake),
		Difficulty: difficulty,
	}, &result)
	return result, err
}

// TotalStaked returns the sum of all stakes
func (c *Client) TotalStaked(ctx context.Context) (sdkmath.Int, error) {
	var resp handler.TotalStakedResponse
	if err := c.do(ctx, http.MethodGet, pathTotalStaked, nil, nil, &resp); err != nil {
		return sdkmath.Int{}, err
	}
	return resp.TotalStaked, nil
}

// SessionIndex returns the last assigned session index
func (c *Client) SessionIndex(ctx context.Context) (uint32, error) {
	var resp handler.SessionIndexResponse
	err := c.do(ctx, http.MethodGet, pathSessionIndex, nil, nil, &resp)
	return resp.SessionIndex, err
}

// Balance returns a farmer's balance
func (c *Client) Balance(ctx context.Context, identity string) (sdkmath.Int, error) {
	var resp handler.AmountResponse
	if err := c.do(ctx, http.MethodGet, pathBalance, identityQuery(identity), nil, &resp); err != nil {
		return sdkmath.Int{}, err
	}
	return resp.Amount, nil
}

// TotalEarned returns a farmer's lifetime earnings
func (c *Client) TotalEarned(ctx context.Context, identity string) (sdkmath.Int, error) {
	var resp handler.AmountResponse
	if err := c.do(ctx, http.MethodGet, pathTotalEarned, identityQuery(identity), nil, &resp); err != nil {
		return sdkmath.Int{}, err
	}
	return resp.Amount, nil
}

// Status returns a farmer's lifecycle flags
func (c *Client) Status(ctx context.Context, identity string) (domain.FarmerStatus, error) {
	var resp handler.StatusResponse
	err := c.do(ctx, http.MethodGet, pathStatus, identityQuery(identity), nil, &resp)
	return resp.FarmerStatus, err
}

// Farmer returns the full farmer record
func (c *Client) Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error) {
	var rec domain.FarmerRecord
	err := c.do(ctx, http.MethodGet, pathFarmer, identityQuery(identity), nil, &rec)
	return rec, err
}

// Challenge returns the solver inputs for the farmer's current session
func (c *Client) Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error) {
	var ch domain.WorkChallenge
	err := c.do(ctx, http.MethodGet, pathChallenge, identityQuery(identity), nil, &ch)
	return ch, err
}

// Solve asks the server to find a nonce for the farmer's current session
func (c *Client) Solve(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
	var sol domain.Solution
	err := c.do(ctx, http.MethodPost, pathSolve, nil, handler.SolveRequest{
		Identity:   identity,
		Difficulty: difficulty,
	}, &sol)
	return sol, err
}

// StartMining starts a background mining loop
func (c *Client) StartMining(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32, interval time.Duration) error {
	return c.do(ctx, http.MethodPost, pathMinerStart, nil, handler.MinerStartRequest{
		Identity:   identity,
		Stake:      amountString(stake),
		Difficulty: difficulty,
		IntervalMs: interval.Milliseconds(),
	}, nil)
}

// StopMining stops a background mining loop and returns its final statistics
func (c *Client) StopMining(ctx context.Context, identity string) (handler.MinerStatsResponse, error) {
	var resp handler.MinerStatsResponse
	err := c.do(ctx, http.MethodPost, pathMinerStop, nil, handler.MinerStopRequest{Identity: identity}, &resp)
	return resp, err
}

// MiningStats returns the statistics of the current or last mining loop
func (c *Client) MiningStats(ctx context.Context, identity string) (handler.MinerStatsResponse, error) {
	var resp handler.MinerStatsResponse
	err := c.do(ctx, http.MethodGet, pathMinerStats, identityQuery(identity), nil, &resp)
	return resp, err
}

// Health checks liveness
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, pathHealth, nil, nil, nil)
}

// Version returns the server build information
func (c *Client) Version(ctx context.Context) (handler.VersionInfo, error) {
	var info handler.VersionInfo
	err := c.do(ctx, http.MethodGet, pathVersion, nil, nil, &info)
	return info, err
}
