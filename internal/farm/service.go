// Package farm coordinates the plant -> work -> harvest lifecycle.
package farm

import (
	"context"
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/clock"
	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/event"
	"github.com/osse101/KaleFarm_Go/internal/ledger"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/pow"
	"github.com/osse101/KaleFarm_Go/internal/reward"
)

// Service defines the farm session operations
type Service interface {
	// Initialize resets the global counters. Farmer records are untouched.
	Initialize(ctx context.Context) error
	// Plant starts a new session for identity and returns its index
	Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error)
	// Work submits a nonce and the zero run it is claimed to reach
	Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error)
	// Harvest credits the reward for a worked session
	Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error)

	BalanceOf(ctx context.Context, identity string) (sdkmath.Int, error)
	TotalEarnedOf(ctx context.Context, identity string) (sdkmath.Int, error)
	StatusOf(ctx context.Context, identity string) (domain.FarmerStatus, error)
	TotalStaked(ctx context.Context) (sdkmath.Int, error)
	CurrentSessionIndex(ctx context.Context) (uint32, error)
	Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error)
	Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error)
}

type service struct {
	ledger     *ledger.Ledger
	clock      clock.Source
	calculator *reward.Calculator
	bus        event.Bus
}

// NewService creates a new farm service. bus may be nil.
func NewService(l *ledger.Ledger, src clock.Source, calc *reward.Calculator, bus event.Bus) Service {
	return &service{
		ledger:     l,
		clock:      src,
		calculator: calc,
		bus:        bus,
	}
}

func (s *service) Initialize(ctx context.Context) error {
	err := s.ledger.Update(ctx, func(txn *ledger.Txn) error {
		return txn.PutState(ctx, domain.NewFarmState())
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInitializeFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgFarmInitialized)
	s.publish(ctx, event.NewFarmInitializedEvent())
	return nil
}

func (s *service) Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
	ctx = logger.WithIdentity(ctx, identity)
	if stake.IsNil() {
		stake = sdkmath.ZeroInt()
	}

	var sessionIndex uint32
	var plantedAt uint64
	err := s.ledger.Update(ctx, func(txn *ledger.Txn) error {
		state, err := txn.State(ctx)
		if err != nil {
			return err
		}
		if state.SessionCounter == math.MaxUint32 {
			return domain.ErrSessionCounterOverflow
		}

		state.SessionCounter++
		sessionIndex = state.SessionCounter
		plantedAt = s.clock.Now()

		// Replaces any previous record, balance included
		if err := txn.Put(ctx, ledger.NewRecord(identity, sessionIndex, plantedAt)); err != nil {
			return err
		}

		state.TotalStaked = state.TotalStaked.Add(stake)
		return txn.PutState(ctx, state)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgPlantFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgPlanted, "session_index", sessionIndex, "stake", stake.String())
	s.publish(ctx, event.NewFarmPlantedEvent(identity, sessionIndex, stake, plantedAt))
	return sessionIndex, nil
}

func (s *service) Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
	ctx = logger.WithIdentity(ctx, identity)
	log := logger.FromContext(ctx)

	var evt *event.Event
	accepted := false
	err := s.ledger.Update(ctx, func(txn *ledger.Txn) error {
		rec, found, err := txn.Lookup(ctx, identity)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrFarmerNotFound
		}
		if rec.Worked {
			log.Debug(LogMsgWorkAlreadyDone, "session_index", rec.SessionIndex)
			return nil
		}

		actual, ok := pow.Verify(rec.SessionIndex, nonce, s.clock.Sequence(), identity, zerosClaimed)
		e := event.NewFarmWorkedEvent(identity, rec.SessionIndex, nonce, zerosClaimed, actual, ok)
		evt = &e
		if !ok {
			log.Info(LogMsgWorkRejected, "claimed", zerosClaimed, "actual", actual)
			return nil
		}

		rec.Worked = true
		rec.Nonce = nonce
		rec.ZerosClaimed = zerosClaimed
		if err := txn.Put(ctx, rec); err != nil {
			return err
		}
		accepted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgWorkFailed, err)
	}

	if accepted {
		log.Info(LogMsgWorkAccepted, "nonce", nonce, "zeros", zerosClaimed)
	}
	if evt != nil {
		s.publish(ctx, *evt)
	}
	return accepted, nil
}

func (s *service) Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
	ctx = logger.WithIdentity(ctx, identity)
	log := logger.FromContext(ctx)

	amount := sdkmath.ZeroInt()
	var rec domain.FarmerRecord
	var elapsed uint64
	err := s.ledger.Update(ctx, func(txn *ledger.Txn) error {
		var found bool
		var err error
		rec, found, err = txn.Lookup(ctx, identity)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrFarmerNotFound
		}
		if rec.SessionIndex != sessionIndex {
			log.Debug(LogMsgHarvestIndexDiffer, "requested", sessionIndex, "recorded", rec.SessionIndex)
		}

		switch {
		case rec.Harvested:
			log.Debug(LogMsgHarvestSkipped, "reason", skipReasonAlreadyHarvested)
			return nil
		case !rec.Worked:
			log.Debug(LogMsgHarvestSkipped, "reason", skipReasonNotWorked)
			return nil
		}

		now := s.clock.Now()
		if reward.Regressed(rec.PlantedAt, now) {
			log.Warn(LogMsgClockRegressed, "planted_at", rec.PlantedAt, "now", now)
		}
		elapsed = s.calculator.ElapsedUnits(rec.PlantedAt, now)
		amount = s.calculator.Compute(rec.ZerosClaimed, rec.PlantedAt, now)

		rec.Balance = rec.Balance.Add(amount)
		rec.TotalEarned = rec.TotalEarned.Add(amount)
		rec.Harvested = true
		return txn.Put(ctx, rec)
	})
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("%s: %w", ErrMsgHarvestFailed, err)
	}

	if amount.IsPositive() {
		log.Info(LogMsgHarvested, "reward", amount.String(), "balance", rec.Balance.String())
		s.publish(ctx, event.NewFarmHarvestedEvent(identity, rec.SessionIndex, amount, rec.ZerosClaimed, elapsed))
	}
	return amount, nil
}

func (s *service) BalanceOf(ctx context.Context, identity string) (sdkmath.Int, error) {
	rec, err := s.Farmer(ctx, identity)
	if err != nil {
		return sdkmath.ZeroInt(), err
	}
	return rec.Balance, nil
}

func (s *service) TotalEarnedOf(ctx context.Context, identity string) (sdkmath.Int, error) {
	rec, err := s.Farmer(ctx, identity)
	if err != nil {
		return sdkmath.ZeroInt(), err
	}
	return rec.TotalEarned, nil
}

func (s *service) StatusOf(ctx context.Context, identity string) (domain.FarmerStatus, error) {
	rec, err := s.Farmer(ctx, identity)
	if err != nil {
		return domain.FarmerStatus{}, err
	}
	return rec.Status(), nil
}

func (s *service) TotalStaked(ctx context.Context) (sdkmath.Int, error) {
	state, err := s.ledger.State(ctx)
	if err != nil {
		return sdkmath.ZeroInt(), fmt.Errorf("%s: %w", ErrMsgStateQueryFailed, err)
	}
	return state.TotalStaked, nil
}

func (s *service) CurrentSessionIndex(ctx context.Context) (uint32, error) {
	state, err := s.ledger.State(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgStateQueryFailed, err)
	}
	return state.SessionCounter, nil
}

// Farmer returns the full record, or the default record for unknown identities
func (s *service) Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error) {
	rec, err := s.ledger.Get(ctx, identity)
	if err != nil {
		return domain.FarmerRecord{}, fmt.Errorf("%s: %w", ErrMsgQueryFailed, err)
	}
	return rec, nil
}

// Challenge returns the inputs a solver needs for identity's current session
func (s *service) Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error) {
	rec, err := s.Farmer(ctx, identity)
	if err != nil {
		return domain.WorkChallenge{}, err
	}
	return domain.WorkChallenge{
		Identity:     identity,
		SessionIndex: rec.SessionIndex,
		Entropy:      s.clock.Sequence(),
		Phase:        rec.Phase(),
	}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
