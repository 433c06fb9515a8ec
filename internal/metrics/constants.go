package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameFarmPlants         = "farm_plants_total"
	MetricNameFarmWorkAttempts   = "farm_work_attempts_total"
	MetricNameFarmHarvests       = "farm_harvests_total"
	MetricNameFarmRewardIssued   = "farm_reward_issued_total"
	MetricNameFarmBestZeros      = "farm_best_zero_run"
	MetricNameMinerCycles        = "miner_cycles_total"
	MetricNameMinerSolveAttempts = "miner_solve_attempts_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextFarmPlants         = "Total number of plants"
	HelpTextFarmWorkAttempts   = "Total number of work attempts by outcome"
	HelpTextFarmHarvests       = "Total number of successful harvests"
	HelpTextFarmRewardIssued   = "Total reward credited by harvests"
	HelpTextFarmBestZeros      = "Highest zero run accepted by work"
	HelpTextMinerCycles        = "Total number of mining cycles by outcome"
	HelpTextMinerSolveAttempts = "Total number of nonces tried by the miner"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelResult = "result"
)

// Path label values
const (
	PathUnmatched = "unmatched"
	PathMetrics   = "/metrics"
)

// Result label values
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultSuccess  = "success"
	ResultFailure  = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
