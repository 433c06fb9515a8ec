package pow

// Digest layout
const (
	DigestSize = 20

	sessionOffset = 0
	nonceOffset   = 4
	entropyOffset = 12
)

// Solver defaults
const (
	// DefaultMaxAttempts bounds a solve when the caller sets no limit
	DefaultMaxAttempts = 1 << 24

	// MaxDifficulty is the highest run a digest can score
	MaxDifficulty = DigestSize * 2

	// contextCheckInterval is how many nonces are tried between context checks
	contextCheckInterval = 4096
)

// Error messages
const (
	ErrMsgNoSolution        = "no nonce found within attempt budget"
	ErrMsgInvalidDifficulty = "difficulty exceeds maximum digest run"
)
