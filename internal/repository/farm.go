package repository

import (
	"context"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// FarmerReader reads committed farm data
type FarmerReader interface {
	// GetFarmer returns domain.ErrFarmerNotFound when the identity has no record
	GetFarmer(ctx context.Context, identity string) (*domain.FarmerRecord, error)

	// GetFarmState returns domain.ErrFarmStateNotFound before the first initialize or plant
	GetFarmState(ctx context.Context) (*domain.FarmState, error)
}

// FarmRepository handles farmer and farm state persistence
type FarmRepository interface {
	FarmerReader

	// Transaction support
	BeginTx(ctx context.Context) (FarmTx, error)
}

// FarmTx defines the interface for farm transactions
type FarmTx interface {
	Tx

	// GetFarmStateWithLock retrieves the farm state with FOR UPDATE lock
	GetFarmStateWithLock(ctx context.Context) (*domain.FarmState, error)

	// GetFarmerWithLock retrieves a farmer record with FOR UPDATE lock
	GetFarmerWithLock(ctx context.Context, identity string) (*domain.FarmerRecord, error)

	// PutFarmState replaces the farm state
	PutFarmState(ctx context.Context, state domain.FarmState) error

	// PutFarmer replaces the whole farmer record
	PutFarmer(ctx context.Context, record domain.FarmerRecord) error
}
