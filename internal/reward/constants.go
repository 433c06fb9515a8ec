package reward

// Reward formula defaults
const (
	DefaultBaseReward     = 1000
	DefaultPerZeroBonus   = 100
	DefaultSecondsPerUnit = 60
)
