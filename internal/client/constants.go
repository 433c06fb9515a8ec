package client

import "time"

// Client defaults
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond

	maxErrorBodyBytes = 1 << 14
)

// Header names
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// Error messages
const (
	ErrMsgMarshalFailed = "failed to marshal request"
	ErrMsgBuildRequest  = "failed to create request"
	ErrMsgDecodeFailed  = "failed to decode response"
)

// Log messages
const (
	LogMsgRetrying = "Retrying API request"
)

// API paths
const (
	pathInitialize   = "/api/v1/farm/initialize"
	pathPlant        = "/api/v1/farm/plant"
	pathWork         = "/api/v1/farm/work"
	pathHarvest      = "/api/v1/farm/harvest"
	pathCycle        = "/api/v1/farm/cycle"
	pathTotalStaked  = "/api/v1/farm/total-staked"
	pathSessionIndex = "/api/v1/farm/session-index"
	pathFarmer       = "/api/v1/farmer"
	pathBalance      = "/api/v1/farmer/balance"
	pathTotalEarned  = "/api/v1/farmer/total-earned"
	pathStatus       = "/api/v1/farmer/status"
	pathChallenge    = "/api/v1/farmer/challenge"
	pathSolve        = "/api/v1/pow/solve"
	pathMinerStart   = "/api/v1/miner/start"
	pathMinerStop    = "/api/v1/miner/stop"
	pathMinerStats   = "/api/v1/miner/stats"
	pathHealth       = "/healthz"
	pathVersion      = "/version"
)
