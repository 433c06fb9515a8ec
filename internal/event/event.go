package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	sdkmath "cosmossdk.io/math"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Farm event types
const (
	FarmInitialized Type = "farm.initialized"
	FarmPlanted     Type = "farm.planted"
	FarmWorked      Type = "farm.worked"
	FarmHarvested   Type = "farm.harvested"

	MinerCycleCompleted Type = "miner.cycle_completed"
)

// FarmPlantedPayloadV1 is the typed payload for plant events
type FarmPlantedPayloadV1 struct {
	Identity     string      `json:"identity"`
	SessionIndex uint32      `json:"session_index"`
	Stake        sdkmath.Int `json:"stake"`
	PlantedAt    uint64      `json:"planted_at"`
}

// FarmWorkedPayloadV1 is the typed payload for work attempts, accepted or not
type FarmWorkedPayloadV1 struct {
	Identity     string `json:"identity"`
	SessionIndex uint32 `json:"session_index"`
	Nonce        uint64 `json:"nonce"`
	ZerosClaimed uint32 `json:"zeros_claimed"`
	ActualZeros  uint32 `json:"actual_zeros"`
	Accepted     bool   `json:"accepted"`
}

// FarmHarvestedPayloadV1 is the typed payload for harvest events
type FarmHarvestedPayloadV1 struct {
	Identity     string      `json:"identity"`
	SessionIndex uint32      `json:"session_index"`
	Reward       sdkmath.Int `json:"reward"`
	ZerosClaimed uint32      `json:"zeros_claimed"`
	ElapsedUnits uint64      `json:"elapsed_units"`
}

// MinerCyclePayloadV1 is the typed payload for completed mining cycles
type MinerCyclePayloadV1 struct {
	Identity     string      `json:"identity"`
	SessionIndex uint32      `json:"session_index"`
	Succeeded    bool        `json:"succeeded"`
	Reward       sdkmath.Int `json:"reward"`
	Attempts     uint64      `json:"attempts"`
	Message      string      `json:"message"`
}

// NewFarmInitializedEvent creates a farm initialized event
func NewFarmInitializedEvent() Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     FarmInitialized,
		Metadata: map[string]interface{}{MetadataKeyTimestamp: time.Now().Unix()},
	}
}

// NewFarmPlantedEvent creates a plant event
func NewFarmPlantedEvent(identity string, sessionIndex uint32, stake sdkmath.Int, plantedAt uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmPlanted,
		Payload: FarmPlantedPayloadV1{
			Identity:     identity,
			SessionIndex: sessionIndex,
			Stake:        stake,
			PlantedAt:    plantedAt,
		},
	}
}

// NewFarmWorkedEvent creates a work attempt event
func NewFarmWorkedEvent(identity string, sessionIndex uint32, nonce uint64, claimed, actual uint32, accepted bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmWorked,
		Payload: FarmWorkedPayloadV1{
			Identity:     identity,
			SessionIndex: sessionIndex,
			Nonce:        nonce,
			ZerosClaimed: claimed,
			ActualZeros:  actual,
			Accepted:     accepted,
		},
	}
}

// NewFarmHarvestedEvent creates a harvest event
func NewFarmHarvestedEvent(identity string, sessionIndex uint32, reward sdkmath.Int, zeros uint32, elapsedUnits uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FarmHarvested,
		Payload: FarmHarvestedPayloadV1{
			Identity:     identity,
			SessionIndex: sessionIndex,
			Reward:       reward,
			ZerosClaimed: zeros,
			ElapsedUnits: elapsedUnits,
		},
	}
}

// NewMinerCycleEvent creates a mining cycle event
func NewMinerCycleEvent(identity string, sessionIndex uint32, succeeded bool, reward sdkmath.Int, attempts uint64, message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MinerCycleCompleted,
		Payload: MinerCyclePayloadV1{
			Identity:     identity,
			SessionIndex: sessionIndex,
			Succeeded:    succeeded,
			Reward:       reward,
			Attempts:     attempts,
			Message:      message,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", ErrMsgSubscriberFailed, event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
