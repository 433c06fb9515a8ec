package mocks

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// MockFarmService is a mock of farm.Service
type MockFarmService struct {
	mock.Mock
}

// NewMockFarmService creates a mock and asserts its expectations on cleanup
func NewMockFarmService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFarmService {
	m := &MockFarmService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFarmService) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockFarmService) Plant(ctx context.Context, identity string, stake sdkmath.Int) (uint32, error) {
	args := m.Called(ctx, identity, stake)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockFarmService) Work(ctx context.Context, identity string, nonce uint64, zerosClaimed uint32) (bool, error) {
	args := m.Called(ctx, identity, nonce, zerosClaimed)
	return args.Bool(0), args.Error(1)
}

func (m *MockFarmService) Harvest(ctx context.Context, identity string, sessionIndex uint32) (sdkmath.Int, error) {
	args := m.Called(ctx, identity, sessionIndex)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}

func (m *MockFarmService) BalanceOf(ctx context.Context, identity string) (sdkmath.Int, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}

func (m *MockFarmService) TotalEarnedOf(ctx context.Context, identity string) (sdkmath.Int, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}

func (m *MockFarmService) StatusOf(ctx context.Context, identity string) (domain.FarmerStatus, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(domain.FarmerStatus), args.Error(1)
}

func (m *MockFarmService) TotalStaked(ctx context.Context) (sdkmath.Int, error) {
	args := m.Called(ctx)
	return args.Get(0).(sdkmath.Int), args.Error(1)
}

func (m *MockFarmService) CurrentSessionIndex(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}

func (m *MockFarmService) Farmer(ctx context.Context, identity string) (domain.FarmerRecord, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(domain.FarmerRecord), args.Error(1)
}

func (m *MockFarmService) Challenge(ctx context.Context, identity string) (domain.WorkChallenge, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(domain.WorkChallenge), args.Error(1)
}
