package mocks

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// MockMinerService is a mock of miner.Service
type MockMinerService struct {
	mock.Mock
}

// NewMockMinerService creates a mock and asserts its expectations on cleanup
func NewMockMinerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMinerService {
	m := &MockMinerService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMinerService) GenerateSolution(ctx context.Context, identity string, difficulty uint32) (domain.Solution, error) {
	args := m.Called(ctx, identity, difficulty)
	return args.Get(0).(domain.Solution), args.Error(1)
}

func (m *MockMinerService) FarmCycle(ctx context.Context, identity string, stake sdkmath.Int, difficulty uint32) (domain.CycleResult, error) {
	args := m.Called(ctx, identity, stake, difficulty)
	return args.Get(0).(domain.CycleResult), args.Error(1)
}

func (m *MockMinerService) Start(ctx context.Context, opts domain.MiningOptions) error {
	return m.Called(ctx, opts).Error(0)
}

func (m *MockMinerService) Stop(ctx context.Context, identity string) (domain.MiningStats, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(domain.MiningStats), args.Error(1)
}

func (m *MockMinerService) Stats(ctx context.Context, identity string) (domain.MiningStats, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(domain.MiningStats), args.Error(1)
}

func (m *MockMinerService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
