package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/KaleFarm_Go/internal/pow"
	"github.com/osse101/KaleFarm_Go/internal/reward"
)

// MockPinger mocks a store that can report connectivity
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Connected - Success", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		store.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"database connection failed"`)
		store.AssertExpectations(t)
	})

	t.Run("Ping gets a deadline", func(t *testing.T) {
		store := &MockPinger{}
		store.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(store).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		store.AssertExpectations(t)
	})

	t.Run("In-memory store is always ready", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("kalefarm", RulesFrom(reward.DefaultParams())).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	decodeBody(t, w, &info)
	assert.Equal(t, "kalefarm", info.Service)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Version)
	assert.Equal(t, FarmRules{MaxDifficulty: pow.MaxDifficulty, BaseReward: 1000, PerZeroBonus: 100, SecondsPerUnit: 60}, info.Rules)
}

func TestGetVersionInfo(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "dev"
	t.Setenv("VERSION", "")
	assert.Equal(t, "dev", getVersionInfo())

	t.Setenv("VERSION", "1.2.3-env")
	assert.Equal(t, "1.2.3-env", getVersionInfo())

	Version = "2.0.0"
	assert.Equal(t, "2.0.0", getVersionInfo())
}
