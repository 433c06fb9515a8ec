package metrics

import (
	"context"
	"sync"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/event"
	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct {
	mu        sync.Mutex
	bestZeros uint32
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm and miner events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.FarmInitialized,
		event.FarmPlanted,
		event.FarmWorked,
		event.FarmHarvested,
		event.MinerCycleCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.FarmPlanted:
		FarmPlants.Inc()

	case event.FarmWorked:
		payload, err := event.DecodePayload[event.FarmWorkedPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		if !payload.Accepted {
			FarmWorkAttempts.WithLabelValues(ResultRejected).Inc()
			break
		}
		FarmWorkAttempts.WithLabelValues(ResultAccepted).Inc()
		e.observeZeros(payload.ZerosClaimed)

	case event.FarmHarvested:
		payload, err := event.DecodePayload[event.FarmHarvestedPayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		FarmHarvests.Inc()
		FarmRewardIssued.Add(toFloat(payload.Reward))

	case event.MinerCycleCompleted:
		payload, err := event.DecodePayload[event.MinerCyclePayloadV1](evt.Payload)
		if err != nil {
			return e.decodeFailed(ctx, evt, err)
		}
		result := ResultFailure
		if payload.Succeeded {
			result = ResultSuccess
		}
		MinerCycles.WithLabelValues(result).Inc()
		MinerSolveAttempts.Add(float64(payload.Attempts))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// BestZeros returns the highest accepted zero run seen so far
func (e *EventMetricsCollector) BestZeros() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bestZeros
}

func (e *EventMetricsCollector) observeZeros(zeros uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if zeros > e.bestZeros {
		e.bestZeros = zeros
		FarmBestZeros.Set(float64(zeros))
	}
}

func (e *EventMetricsCollector) decodeFailed(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
	return nil
}

// toFloat converts an amount for a counter; amounts beyond int64 are approximated
func toFloat(amount sdkmath.Int) float64 {
	if amount.IsNil() || !amount.IsPositive() {
		return 0
	}
	if amount.IsInt64() {
		return float64(amount.Int64())
	}
	f, _ := sdkmath.LegacyNewDecFromInt(amount).Float64()
	return f
}
