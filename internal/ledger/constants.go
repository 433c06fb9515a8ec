package ledger

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Error messages
const (
	ErrMsgBeginTxFailed = "failed to begin ledger transaction"
	ErrMsgCommitFailed  = "failed to commit ledger transaction"
	ErrMsgGetFarmer     = "failed to get farmer"
	ErrMsgGetFarmState  = "failed to get farm state"
	ErrMsgPutFarmer     = "failed to put farmer"
	ErrMsgPutFarmState  = "failed to put farm state"
)

// Log messages
const (
	LogMsgCommitted = "Ledger transaction committed"
)
