package worker

import "errors"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for pool lifecycle
const (
	LogMsgPoolStopping = "Worker pool stopping"
	LogMsgPoolStopped  = "Worker pool stopped"
	LogMsgPoolTimeout  = "Worker pool stop timed out, cancelling jobs"
)

// ============================================================================
// Log Messages - Loop Runner
// ============================================================================

// Log messages for loop runner operations
const (
	LogMsgLoopStarted  = "Loop started"
	LogMsgLoopStopped  = "Loop stopped"
	LogMsgLoopShutdown = "Shutting down loops"
	LogMsgLoopTimeout  = "Loop shutdown timeout"
)

// ============================================================================
// Errors
// ============================================================================

var (
	// ErrPoolStopped is returned when enqueueing on a stopped pool
	ErrPoolStopped = errors.New("worker pool stopped")
	// ErrLoopExists is returned when a loop is already running under the key
	ErrLoopExists = errors.New("loop already running")
	// ErrLoopNotFound is returned when no loop runs under the key
	ErrLoopNotFound = errors.New("loop not running")
	// ErrRunnerClosed is returned when starting a loop after Shutdown
	ErrRunnerClosed = errors.New("loop runner shut down")
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
