package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
)

// Success messages for API responses
const (
	MsgFarmInitialized = "Farm initialized"
	MsgMiningStarted   = "Mining started"
)

// Operation names used in logs
const (
	opInitialize   = "Initialize"
	opPlant        = "Plant"
	opWork         = "Work"
	opHarvest      = "Harvest"
	opCycle        = "Farm cycle"
	opTotalStaked  = "Total staked"
	opSessionIndex = "Session index"
	opBalance      = "Balance"
	opTotalEarned  = "Total earned"
	opStatus       = "Status"
	opFarmer       = "Farmer"
	opChallenge    = "Challenge"
	opSolve        = "Solve"
	opMinerStart   = "Miner start"
	opMinerStop    = "Miner stop"
	opMinerStats   = "Miner stats"
)

// Query parameter names
const (
	paramIdentity = "identity"
)

const responseBufferSize = 512
