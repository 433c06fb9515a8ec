package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/repository"
)

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

// GetFarmer retrieves a committed farmer record
func (r *FarmRepository) GetFarmer(ctx context.Context, identity string) (*domain.FarmerRecord, error) {
	record, err := fetchFarmer(ctx, r.db, SQLSelectFarmer, identity)
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFarmer, err)
	}
	return record, nil
}

// GetFarmState retrieves the committed farm state
func (r *FarmRepository) GetFarmState(ctx context.Context) (*domain.FarmState, error) {
	state, err := fetchFarmState(ctx, r.db, SQLSelectFarmState)
	if err != nil {
		if errors.Is(err, domain.ErrFarmStateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFarmState, err)
	}
	return state, nil
}

// BeginTx starts a transaction and returns a FarmTx
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &farmTx{tx: tx}, nil
}

// farmTx implements repository.FarmTx
type farmTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *farmTx) Commit(ctx context.Context) error {
	return mapTxErr(t.tx.Commit(ctx))
}

// Rollback rolls back the transaction
func (t *farmTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

// GetFarmStateWithLock retrieves the farm state with FOR UPDATE lock.
// The advisory lock covers the case where the row does not exist yet.
func (t *farmTx) GetFarmStateWithLock(ctx context.Context) (*domain.FarmState, error) {
	if _, err := t.tx.Exec(ctx, SQLAdvisoryLock, FarmStateLockKey); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	state, err := fetchFarmState(ctx, t.tx, SQLSelectFarmStateForUpdate)
	if err != nil {
		if errors.Is(err, domain.ErrFarmStateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get farm state with lock: %w", err)
	}
	return state, nil
}

// GetFarmerWithLock retrieves a farmer record with FOR UPDATE lock
func (t *farmTx) GetFarmerWithLock(ctx context.Context, identity string) (*domain.FarmerRecord, error) {
	if _, err := t.tx.Exec(ctx, SQLAdvisoryLock, hashIdentity(identity)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireLock, err)
	}

	record, err := fetchFarmer(ctx, t.tx, SQLSelectFarmerForUpdate, identity)
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get farmer with lock: %w", err)
	}
	return record, nil
}

// PutFarmState replaces the farm state row
func (t *farmTx) PutFarmState(ctx context.Context, state domain.FarmState) error {
	_, err := t.tx.Exec(ctx, SQLUpsertFarmState,
		FarmStateRowID,
		int64(state.SessionCounter),
		intToText(state.TotalStaked),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPutFarmState, err)
	}
	return nil
}

// PutFarmer replaces the whole farmer row
func (t *farmTx) PutFarmer(ctx context.Context, record domain.FarmerRecord) error {
	_, err := t.tx.Exec(ctx, SQLUpsertFarmer,
		record.Identity,
		intToText(record.Balance),
		intToText(record.TotalEarned),
		int64(record.SessionIndex),
		uint64ToText(record.PlantedAt),
		record.Worked,
		record.Harvested,
		uint64ToText(record.Nonce),
		int64(record.ZerosClaimed),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPutFarmer, err)
	}
	return nil
}

// fetchFarmer is a helper to fetch and map a farmer row with common logic
func fetchFarmer(ctx context.Context, q querier, query, identity string) (*domain.FarmerRecord, error) {
	var (
		record                                 domain.FarmerRecord
		balance, totalEarned, plantedAt, nonce string
		sessionIndex, zerosClaimed             int64
	)

	err := q.QueryRow(ctx, query, identity).Scan(
		&record.Identity,
		&balance,
		&totalEarned,
		&sessionIndex,
		&plantedAt,
		&record.Worked,
		&record.Harvested,
		&nonce,
		&zerosClaimed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}

	if record.Balance, err = textToInt(balance); err != nil {
		return nil, err
	}
	if record.TotalEarned, err = textToInt(totalEarned); err != nil {
		return nil, err
	}
	if record.PlantedAt, err = textToUint64(plantedAt); err != nil {
		return nil, err
	}
	if record.Nonce, err = textToUint64(nonce); err != nil {
		return nil, err
	}
	record.SessionIndex = uint32(sessionIndex)
	record.ZerosClaimed = uint32(zerosClaimed)

	return &record, nil
}

// fetchFarmState is a helper to fetch and map the farm state row
func fetchFarmState(ctx context.Context, q querier, query string) (*domain.FarmState, error) {
	var (
		counter int64
		staked  string
	)

	err := q.QueryRow(ctx, query, FarmStateRowID).Scan(&counter, &staked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFarmStateNotFound
		}
		return nil, err
	}

	total, err := textToInt(staked)
	if err != nil {
		return nil, err
	}

	return &domain.FarmState{
		SessionCounter: uint32(counter),
		TotalStaked:    total,
	}, nil
}
