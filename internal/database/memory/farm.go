// Package memory is an in-process farm store with the same transaction
// semantics as the Postgres repository.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/repository"
)

// FarmRepository keeps committed farm data in maps.
// Transactions are exclusive: BeginTx blocks until the previous one finishes.
type FarmRepository struct {
	writer chan struct{}

	mu      sync.RWMutex
	farmers map[string]domain.FarmerRecord
	state   *domain.FarmState
}

// NewFarmRepository creates an empty store
func NewFarmRepository() *FarmRepository {
	r := &FarmRepository{
		writer:  make(chan struct{}, 1),
		farmers: make(map[string]domain.FarmerRecord),
	}
	return r
}

// GetFarmer retrieves a committed farmer record
func (r *FarmRepository) GetFarmer(_ context.Context, identity string) (*domain.FarmerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.farmers[identity]
	if !ok {
		return nil, domain.ErrFarmerNotFound
	}
	return &record, nil
}

// GetFarmState retrieves the committed farm state
func (r *FarmRepository) GetFarmState(_ context.Context) (*domain.FarmState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return nil, domain.ErrFarmStateNotFound
	}
	state := *r.state
	return &state, nil
}

// BeginTx waits for exclusive write access and returns a FarmTx
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	select {
	case r.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &farmTx{
		repo:    r,
		farmers: make(map[string]domain.FarmerRecord),
	}, nil
}

// FarmerCount returns the number of committed farmer records
func (r *FarmRepository) FarmerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.farmers)
}

// farmTx stages writes until Commit
type farmTx struct {
	repo    *FarmRepository
	farmers map[string]domain.FarmerRecord
	state   *domain.FarmState
	done    bool
}

// Commit applies staged writes and releases the writer slot
func (t *farmTx) Commit(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true

	t.repo.mu.Lock()
	for identity, record := range t.farmers {
		t.repo.farmers[identity] = record
	}
	if t.state != nil {
		state := *t.state
		t.repo.state = &state
	}
	t.repo.mu.Unlock()

	<-t.repo.writer
	return nil
}

// Rollback discards staged writes and releases the writer slot
func (t *farmTx) Rollback(_ context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.farmers = nil
	t.state = nil

	<-t.repo.writer
	return nil
}

// GetFarmStateWithLock reads the staged state, falling back to committed data
func (t *farmTx) GetFarmStateWithLock(ctx context.Context) (*domain.FarmState, error) {
	if t.done {
		return nil, repository.ErrTxClosed
	}
	if t.state != nil {
		state := *t.state
		return &state, nil
	}
	return t.repo.GetFarmState(ctx)
}

// GetFarmerWithLock reads the staged record, falling back to committed data
func (t *farmTx) GetFarmerWithLock(ctx context.Context, identity string) (*domain.FarmerRecord, error) {
	if t.done {
		return nil, repository.ErrTxClosed
	}
	if record, ok := t.farmers[identity]; ok {
		return &record, nil
	}
	return t.repo.GetFarmer(ctx, identity)
}

// PutFarmState stages a farm state replacement
func (t *farmTx) PutFarmState(_ context.Context, state domain.FarmState) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.state = &state
	return nil
}

// PutFarmer stages a full record replacement
func (t *farmTx) PutFarmer(_ context.Context, record domain.FarmerRecord) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.farmers[record.Identity] = record
	return nil
}
