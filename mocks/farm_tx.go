package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// MockFarmTx is a mock of repository.FarmTx
type MockFarmTx struct {
	mock.Mock
}

// NewMockFarmTx creates a mock and asserts its expectations on cleanup
func NewMockFarmTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFarmTx {
	m := &MockFarmTx{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFarmTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFarmTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFarmTx) GetFarmStateWithLock(ctx context.Context) (*domain.FarmState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmState), args.Error(1)
}

func (m *MockFarmTx) GetFarmerWithLock(ctx context.Context, identity string) (*domain.FarmerRecord, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmerRecord), args.Error(1)
}

func (m *MockFarmTx) PutFarmState(ctx context.Context, state domain.FarmState) error {
	return m.Called(ctx, state).Error(0)
}

func (m *MockFarmTx) PutFarmer(ctx context.Context, record domain.FarmerRecord) error {
	return m.Called(ctx, record).Error(0)
}
