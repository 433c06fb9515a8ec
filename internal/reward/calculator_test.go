package reward

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Compute(t *testing.T) {
	calc := NewCalculator(DefaultParams())

	tests := []struct {
		name      string
		zeros     uint32
		plantedAt uint64
		now       uint64
		expected  int64
	}{
		{name: "no zeros no time", zeros: 0, plantedAt: 100, now: 100, expected: 1000},
		{name: "three zeros", zeros: 3, plantedAt: 100, now: 100, expected: 1300},
		{name: "partial minute floors", zeros: 3, plantedAt: 100, now: 159, expected: 1300},
		{name: "one minute", zeros: 3, plantedAt: 100, now: 160, expected: 1301},
		{name: "one hour", zeros: 0, plantedAt: 1000, now: 4600, expected: 1060},
		{name: "clock regression clamps", zeros: 2, plantedAt: 500, now: 100, expected: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.zeros, tt.plantedAt, tt.now)
			assert.True(t, sdkmath.NewInt(tt.expected).Equal(got), "expected %d, got %s", tt.expected, got)
		})
	}
}

func TestCalculator_ComputeLargeInputs(t *testing.T) {
	calc := NewCalculator(DefaultParams())

	got := calc.Compute(math.MaxUint32, 0, math.MaxUint64)

	expected := sdkmath.NewInt(1000).
		Add(sdkmath.NewInt(100).MulRaw(math.MaxUint32)).
		Add(sdkmath.NewIntFromUint64(math.MaxUint64 / 60))
	assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
	assert.True(t, got.IsPositive())
}

func TestCalculator_ZeroSecondsPerUnitUsesDefault(t *testing.T) {
	calc := NewCalculator(Params{BaseReward: 10, PerZeroBonus: 1})

	assert.Equal(t, uint64(DefaultSecondsPerUnit), calc.Params().SecondsPerUnit)
	assert.Equal(t, uint64(2), calc.ElapsedUnits(0, 120))
}

func TestRegressed(t *testing.T) {
	assert.True(t, Regressed(10, 9))
	assert.False(t, Regressed(10, 10))
	assert.False(t, Regressed(10, 11))
}
