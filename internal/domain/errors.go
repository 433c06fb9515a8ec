package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Farmer errors
	ErrMsgFarmerNotFound = "farmer not found"
	ErrMsgInvalidRecord  = "invalid farmer record"

	// Farm state errors
	ErrMsgFarmStateNotFound      = "farm state not found"
	ErrMsgSessionCounterOverflow = "session counter overflow"

	// Miner errors
	ErrMsgAlreadyMining = "already mining"
	ErrMsgNotMining     = "not mining"
	ErrMsgMinerStopped  = "miner is shut down"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Farmer errors
	ErrFarmerNotFound = errors.New(ErrMsgFarmerNotFound)
	ErrInvalidRecord  = errors.New(ErrMsgInvalidRecord)

	// Farm state errors
	ErrFarmStateNotFound      = errors.New(ErrMsgFarmStateNotFound)
	ErrSessionCounterOverflow = errors.New(ErrMsgSessionCounterOverflow)

	// Miner errors
	ErrAlreadyMining = errors.New(ErrMsgAlreadyMining)
	ErrNotMining     = errors.New(ErrMsgNotMining)
	ErrMinerStopped  = errors.New(ErrMsgMinerStopped)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
