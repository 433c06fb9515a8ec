package reward

import (
	sdkmath "cosmossdk.io/math"
)

// Params holds the reward formula coefficients
type Params struct {
	BaseReward     int64
	PerZeroBonus   int64
	SecondsPerUnit uint64
}

// DefaultParams returns the standard farming coefficients
func DefaultParams() Params {
	return Params{
		BaseReward:     DefaultBaseReward,
		PerZeroBonus:   DefaultPerZeroBonus,
		SecondsPerUnit: DefaultSecondsPerUnit,
	}
}

// Calculator computes harvest rewards
type Calculator struct {
	params Params
}

// NewCalculator creates a calculator. A zero SecondsPerUnit falls back to the default.
func NewCalculator(params Params) *Calculator {
	if params.SecondsPerUnit == 0 {
		params.SecondsPerUnit = DefaultSecondsPerUnit
	}
	return &Calculator{params: params}
}

// Params returns the coefficients in use
func (c *Calculator) Params() Params {
	return c.params
}

// Compute returns base + perZero*zeros + floor((now - plantedAt) / secondsPerUnit).
// A clock regression (now < plantedAt) contributes no elapsed term.
func (c *Calculator) Compute(zerosClaimed uint32, plantedAt, now uint64) sdkmath.Int {
	reward := sdkmath.NewInt(c.params.BaseReward).
		Add(sdkmath.NewInt(c.params.PerZeroBonus).MulRaw(int64(zerosClaimed)))

	return reward.Add(sdkmath.NewIntFromUint64(c.ElapsedUnits(plantedAt, now)))
}

// ElapsedUnits is the time component of the reward
func (c *Calculator) ElapsedUnits(plantedAt, now uint64) uint64 {
	if now < plantedAt {
		return 0
	}
	return (now - plantedAt) / c.params.SecondsPerUnit
}

// Regressed reports whether the clock reads earlier than the planting time
func Regressed(plantedAt, now uint64) bool {
	return now < plantedAt
}
