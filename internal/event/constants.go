package event

// EventSchemaVersion is stamped on every farm and miner event
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeyTimestamp = "timestamp"
)

const (
	ErrMsgSubscriberFailed = "event subscriber failed for"
	ErrMsgDecodePayload    = "failed to decode event payload"
)
