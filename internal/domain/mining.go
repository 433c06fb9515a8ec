package domain

import (
	"time"

	sdkmath "cosmossdk.io/math"
)

// Solution is a nonce found by the proof-of-work solver
type Solution struct {
	Nonce    uint64 `json:"nonce"`
	Zeros    uint32 `json:"zeros"`
	Attempts uint64 `json:"attempts"`
	Digest   string `json:"digest"`
}

// CycleResult reports how far a plant -> work -> harvest cycle got
type CycleResult struct {
	Identity     string      `json:"identity"`
	SessionIndex uint32      `json:"session_index"`
	Stake        sdkmath.Int `json:"stake"`
	Difficulty   uint32      `json:"difficulty"`
	Solved       bool        `json:"solved"`
	Solution     *Solution   `json:"solution,omitempty"`
	Worked       bool        `json:"worked"`
	Reward       sdkmath.Int `json:"reward"`
	Message      string      `json:"message"`
}

// Succeeded reports whether the cycle ended with a harvest
func (c CycleResult) Succeeded() bool {
	return c.Worked && c.Reward.IsPositive()
}

// MiningOptions configures a background mining loop
type MiningOptions struct {
	Identity   string        `json:"identity"`
	Stake      sdkmath.Int   `json:"stake"`
	Difficulty uint32        `json:"difficulty"`
	Interval   time.Duration `json:"interval"`
}

// MiningStats summarizes a background mining loop
type MiningStats struct {
	Identity         string      `json:"identity"`
	Active           bool        `json:"active"`
	Difficulty       uint32      `json:"difficulty"`
	Cycles           uint64      `json:"cycles"`
	SuccessfulCycles uint64      `json:"successful_cycles"`
	FailedCycles     uint64      `json:"failed_cycles"`
	TotalReward      sdkmath.Int `json:"total_reward"`
	BestZeros        uint32      `json:"best_zeros"`
	LastSessionIndex uint32      `json:"last_session_index"`
	LastError        string      `json:"last_error,omitempty"`
	StartedAt        time.Time   `json:"started_at"`
	LastCycleAt      *time.Time  `json:"last_cycle_at,omitempty"`
}

// SuccessRate is the share of cycles that ended in a harvest, 0 before the first cycle
func (m MiningStats) SuccessRate() float64 {
	if m.Cycles == 0 {
		return 0
	}
	return float64(m.SuccessfulCycles) / float64(m.Cycles)
}
