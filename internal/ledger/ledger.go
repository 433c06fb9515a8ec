package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/repository"
)

// Ledger is the farmer record store seen by the farm service.
// Reads return defaults for unknown identities; writes go through Update,
// which runs one store transaction at a time.
type Ledger struct {
	repo  repository.FarmRepository
	cache *farmerCache
	mu    sync.Mutex

	// generation increments on every commit; readers only fill the cache if it did not move
	cacheMu    sync.Mutex
	generation uint64
}

// New creates a ledger over a repository
func New(repo repository.FarmRepository, cacheCfg CacheConfig) *Ledger {
	return &Ledger{
		repo:  repo,
		cache: newFarmerCache(cacheCfg),
	}
}

// NewRecord is the only way a planted record comes into existence
func NewRecord(identity string, sessionIndex uint32, plantedAt uint64) domain.FarmerRecord {
	rec := DefaultRecord(identity)
	rec.SessionIndex = sessionIndex
	rec.PlantedAt = plantedAt
	return rec
}

// DefaultRecord is the all-zero record reported for unknown identities. It is never persisted.
func DefaultRecord(identity string) domain.FarmerRecord {
	return domain.FarmerRecord{
		Identity:    identity,
		Balance:     sdkmath.ZeroInt(),
		TotalEarned: sdkmath.ZeroInt(),
	}
}

// Validate checks the record invariants that a full replace must preserve
func Validate(rec domain.FarmerRecord) error {
	if rec.Identity == "" {
		return fmt.Errorf("%w: empty identity", domain.ErrInvalidRecord)
	}
	if rec.Harvested && !rec.Worked {
		return fmt.Errorf("%w: harvested without work", domain.ErrInvalidRecord)
	}
	if rec.Balance.IsNil() || rec.TotalEarned.IsNil() {
		return fmt.Errorf("%w: missing amounts", domain.ErrInvalidRecord)
	}
	return nil
}

// Lookup returns the stored record and whether it exists
func (l *Ledger) Lookup(ctx context.Context, identity string) (domain.FarmerRecord, bool, error) {
	if rec, ok := l.cache.Get(identity); ok {
		return rec, true, nil
	}

	l.cacheMu.Lock()
	gen := l.generation
	l.cacheMu.Unlock()

	rec, err := l.repo.GetFarmer(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			return domain.FarmerRecord{}, false, nil
		}
		return domain.FarmerRecord{}, false, fmt.Errorf("%s: %w", ErrMsgGetFarmer, err)
	}

	l.cacheMu.Lock()
	if l.generation == gen {
		l.cache.Set(*rec)
	}
	l.cacheMu.Unlock()

	return *rec, true, nil
}

// Get returns the stored record or the default record
func (l *Ledger) Get(ctx context.Context, identity string) (domain.FarmerRecord, error) {
	rec, found, err := l.Lookup(ctx, identity)
	if err != nil {
		return domain.FarmerRecord{}, err
	}
	if !found {
		return DefaultRecord(identity), nil
	}
	return rec, nil
}

// State returns the committed farm state, zeroed before first use
func (l *Ledger) State(ctx context.Context) (domain.FarmState, error) {
	state, err := l.repo.GetFarmState(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrFarmStateNotFound) {
			return domain.NewFarmState(), nil
		}
		return domain.FarmState{}, fmt.Errorf("%s: %w", ErrMsgGetFarmState, err)
	}
	return *state, nil
}

// CacheStats exposes read cache counters
func (l *Ledger) CacheStats() CacheStats {
	return l.cache.GetStats()
}

// Update runs fn inside a single store transaction while holding the writer lock.
// If fn returns an error nothing is written. On commit the read cache is refreshed
// with every record fn wrote.
func (l *Ledger) Update(ctx context.Context, fn func(txn *Txn) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, err := l.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	txn := &Txn{tx: tx, written: make(map[string]domain.FarmerRecord)}
	if err := fn(txn); err != nil {
		return err
	}

	err = tx.Commit(ctx)

	l.cacheMu.Lock()
	l.generation++
	for identity, rec := range txn.written {
		if err != nil {
			l.cache.Invalidate(identity)
			continue
		}
		l.cache.Set(rec)
	}
	l.cacheMu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgCommitted, "records", len(txn.written))
	return nil
}

// Txn is the view of the ledger inside Update
type Txn struct {
	tx      repository.FarmTx
	written map[string]domain.FarmerRecord
}

// Lookup reads a record with a row lock
func (t *Txn) Lookup(ctx context.Context, identity string) (domain.FarmerRecord, bool, error) {
	rec, err := t.tx.GetFarmerWithLock(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			return domain.FarmerRecord{}, false, nil
		}
		return domain.FarmerRecord{}, false, fmt.Errorf("%s: %w", ErrMsgGetFarmer, err)
	}
	return *rec, true, nil
}

// Put replaces the full record
func (t *Txn) Put(ctx context.Context, rec domain.FarmerRecord) error {
	if err := Validate(rec); err != nil {
		return err
	}
	if err := t.tx.PutFarmer(ctx, rec); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPutFarmer, err)
	}
	t.written[rec.Identity] = rec
	return nil
}

// State reads the farm state with a row lock, zeroed before first use
func (t *Txn) State(ctx context.Context) (domain.FarmState, error) {
	state, err := t.tx.GetFarmStateWithLock(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrFarmStateNotFound) {
			return domain.NewFarmState(), nil
		}
		return domain.FarmState{}, fmt.Errorf("%s: %w", ErrMsgGetFarmState, err)
	}
	return *state, nil
}

// PutState replaces the farm state
func (t *Txn) PutState(ctx context.Context, state domain.FarmState) error {
	if state.TotalStaked.IsNil() {
		state.TotalStaked = sdkmath.ZeroInt()
	}
	if err := t.tx.PutFarmState(ctx, state); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPutFarmState, err)
	}
	return nil
}
