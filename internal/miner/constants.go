package miner

import "time"

// Defaults
const (
	DefaultDifficulty  = 2
	FallbackDifficulty = 1
	DefaultInterval    = 10 * time.Second
	MinInterval        = 100 * time.Millisecond
	DefaultMaxAttempts = 1 << 20
)

// Cycle result messages
const (
	MsgCycleComplete  = "farm cycle complete"
	MsgNoSolution     = "no valid nonce found"
	MsgWorkRejected   = "work rejected"
	MsgNothingToReap  = "harvest returned nothing"
	MsgFallbackSolved = "solved at fallback difficulty"
)

// Log messages
const (
	LogMsgCycleStarted  = "Farm cycle started"
	LogMsgCycleFinished = "Farm cycle finished"
	LogMsgCycleFailed   = "Farm cycle failed"
	LogMsgFallback      = "Target difficulty not reached, retrying at fallback"
	LogMsgMiningStarted = "Mining started"
	LogMsgMiningStopped = "Mining stopped"
	LogMsgTickSkipped   = "Mining tick skipped"
	LogMsgShutdown      = "Miner shutting down"
	LogMsgPublishFailed = "Failed to publish miner event"
)

const (
	skipReasonInFlight  = "previous cycle still running"
	skipReasonQueueFull = "worker queue full"
)

// Error message prefixes
const (
	ErrMsgPlantStep     = "plant step failed"
	ErrMsgChallengeStep = "challenge step failed"
	ErrMsgSolveStep     = "solve step failed"
	ErrMsgWorkStep      = "work step failed"
	ErrMsgHarvestStep   = "harvest step failed"
)
