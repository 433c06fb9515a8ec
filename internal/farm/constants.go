package farm

// Log messages
const (
	LogMsgFarmInitialized    = "Farm initialized"
	LogMsgPlanted            = "Plant successful"
	LogMsgWorkAccepted       = "Work accepted"
	LogMsgWorkRejected       = "Work rejected"
	LogMsgWorkAlreadyDone    = "Work already recorded for session"
	LogMsgHarvested          = "Harvest successful"
	LogMsgHarvestSkipped     = "Harvest skipped"
	LogMsgHarvestIndexDiffer = "Harvest session index differs from record"
	LogMsgClockRegressed     = "Ledger time is before plant time, elapsed clamped to zero"
	LogMsgPublishFailed      = "Failed to publish farm event"
)

// Error message prefixes
const (
	ErrMsgInitializeFailed = "failed to initialize farm"
	ErrMsgPlantFailed      = "failed to plant"
	ErrMsgWorkFailed       = "failed to record work"
	ErrMsgHarvestFailed    = "failed to harvest"
	ErrMsgQueryFailed      = "failed to read farmer"
	ErrMsgStateQueryFailed = "failed to read farm state"
)

// Harvest skip reasons
const (
	skipReasonNotWorked        = "not worked"
	skipReasonAlreadyHarvested = "already harvested"
)
