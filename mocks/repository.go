// Package mocks holds testify mocks shared across package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/repository"
)

// MockFarmRepository is a mock of repository.FarmRepository
type MockFarmRepository struct {
	mock.Mock
}

// NewMockFarmRepository creates a mock and asserts its expectations on cleanup
func NewMockFarmRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFarmRepository {
	m := &MockFarmRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFarmRepository) GetFarmer(ctx context.Context, identity string) (*domain.FarmerRecord, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmerRecord), args.Error(1)
}

func (m *MockFarmRepository) GetFarmState(ctx context.Context) (*domain.FarmState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmState), args.Error(1)
}

func (m *MockFarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.FarmTx), args.Error(1)
}
