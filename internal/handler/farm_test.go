package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/mocks"
)

func intEq(want int64) interface{} {
	return mock.MatchedBy(func(v sdkmath.Int) bool {
		return !v.IsNil() && v.Equal(sdkmath.NewInt(want))
	})
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}

func TestFarmHandler_Initialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Initialize", mock.Anything).Return(nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Initialize(w, httptest.NewRequest(http.MethodPost, "/api/v1/farm/initialize", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgFarmInitialized)
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Initialize", mock.Anything).Return(errors.New("connection refused")).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Initialize(w, httptest.NewRequest(http.MethodPost, "/api/v1/farm/initialize", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestFarmHandler_Plant(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(svc *mocks.MockFarmService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			body: PlantRequest{Identity: "alice", Stake: "100"},
			setupMock: func(svc *mocks.MockFarmService) {
				svc.On("Plant", mock.Anything, "alice", intEq(100)).Return(uint32(3), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"session_index":3`,
		},
		{
			name: "Missing stake plants with zero",
			body: PlantRequest{Identity: "discord:42"},
			setupMock: func(svc *mocks.MockFarmService) {
				svc.On("Plant", mock.Anything, "discord:42", intEq(0)).Return(uint32(1), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"identity":"discord:42"`,
		},
		{
			name: "Negative stake accepted",
			body: PlantRequest{Identity: "alice", Stake: "-5"},
			setupMock: func(svc *mocks.MockFarmService) {
				svc.On("Plant", mock.Anything, "alice", intEq(-5)).Return(uint32(2), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing identity",
			body:       PlantRequest{Stake: "1"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"identity":"This field is required"`,
		},
		{
			name:       "Identity with whitespace",
			body:       PlantRequest{Identity: "bad identity"},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:       "Stake not a number",
			body:       PlantRequest{Identity: "alice", Stake: "1.5"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"stake":"Must be a whole number"`,
		},
		{
			name:       "Malformed JSON",
			body:       `{"identity":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name:       "Unknown field",
			body:       `{"identity":"alice","bogus":1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Counter overflow",
			body: PlantRequest{Identity: "alice"},
			setupMock: func(svc *mocks.MockFarmService) {
				svc.On("Plant", mock.Anything, "alice", mock.Anything).Return(uint32(0), domain.ErrSessionCounterOverflow).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   ErrMsgCounterOverflowError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			w := httptest.NewRecorder()
			NewFarmHandler(svc).Plant(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/plant", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestFarmHandler_Work(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Work", mock.Anything, "alice", uint64(99), uint32(7)).Return(true, nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Work(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/work",
			WorkRequest{Identity: "alice", Nonce: 99, ZerosClaimed: 7}))

		require.Equal(t, http.StatusOK, w.Code)
		var resp WorkResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Accepted)
	})

	t.Run("Rejected is not an error", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Work", mock.Anything, "alice", uint64(1), uint32(8)).Return(false, nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Work(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/work",
			WorkRequest{Identity: "alice", Nonce: 1, ZerosClaimed: 8}))

		require.Equal(t, http.StatusOK, w.Code)
		var resp WorkResponse
		decodeBody(t, w, &resp)
		assert.False(t, resp.Accepted)
	})

	t.Run("Unknown farmer", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Work", mock.Anything, "ghost", uint64(0), uint32(0)).Return(false, domain.ErrFarmerNotFound).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Work(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/work", WorkRequest{Identity: "ghost"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgFarmerNotFoundError)
	})
}

func TestFarmHandler_Harvest(t *testing.T) {
	t.Run("Reward returned as string", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Harvest", mock.Anything, "alice", uint32(1)).Return(sdkmath.NewInt(1307), nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Harvest(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/harvest",
			HarvestRequest{Identity: "alice", SessionIndex: 1}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reward":"1307"`)
	})

	t.Run("Nothing to harvest", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Harvest", mock.Anything, "alice", uint32(0)).Return(sdkmath.ZeroInt(), nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Harvest(w, jsonRequest(t, http.MethodPost, "/api/v1/farm/harvest", HarvestRequest{Identity: "alice"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reward":"0"`)
	})
}

func TestFarmHandler_GlobalQueries(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("TotalStaked", mock.Anything).Return(sdkmath.NewInt(350), nil).Once()
	svc.On("CurrentSessionIndex", mock.Anything).Return(uint32(12), nil).Once()
	h := NewFarmHandler(svc)

	w := httptest.NewRecorder()
	h.TotalStaked(w, httptest.NewRequest(http.MethodGet, "/api/v1/farm/total-staked", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_staked":"350"`)

	w = httptest.NewRecorder()
	h.SessionIndex(w, httptest.NewRequest(http.MethodGet, "/api/v1/farm/session-index", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"session_index":12`)
}

func TestFarmHandler_FarmerQueries(t *testing.T) {
	t.Run("Balance", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("BalanceOf", mock.Anything, "alice").Return(sdkmath.NewInt(2840), nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Balance(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/balance?identity=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":"2840"`)
	})

	t.Run("Total earned", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("TotalEarnedOf", mock.Anything, "alice").Return(sdkmath.NewInt(5000), nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).TotalEarned(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/total-earned?identity=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":"5000"`)
	})

	t.Run("Status", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("StatusOf", mock.Anything, "alice").Return(domain.FarmerStatus{Planted: true, Worked: true}, nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Status(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/status?identity=alice", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp StatusResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "alice", resp.Identity)
		assert.True(t, resp.Planted)
		assert.True(t, resp.Worked)
		assert.False(t, resp.Harvested)
	})

	t.Run("Farmer record", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Farmer", mock.Anything, "alice").Return(domain.FarmerRecord{
			Identity:     "alice",
			Balance:      sdkmath.NewInt(10),
			TotalEarned:  sdkmath.NewInt(20),
			SessionIndex: 4,
			PlantedAt:    1_700_000_000,
		}, nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Farmer(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer?identity=alice", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"planted_at":1700000000`)
		assert.Contains(t, w.Body.String(), `"balance":"10"`)
	})

	t.Run("Challenge", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Challenge", mock.Anything, "alice").Return(domain.WorkChallenge{
			Identity:     "alice",
			SessionIndex: 4,
			Entropy:      77,
			Phase:        domain.PhasePlanted,
		}, nil).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Challenge(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/challenge?identity=alice", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var ch domain.WorkChallenge
		decodeBody(t, w, &ch)
		assert.Equal(t, uint64(77), ch.Entropy)
		assert.Equal(t, domain.PhasePlanted, ch.Phase)
	})

	t.Run("Missing identity", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Balance(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/balance", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing identity query parameter")
	})

	t.Run("Invalid identity", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Status(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/status?identity=a%20b", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid identity query parameter")
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("BalanceOf", mock.Anything, "alice").Return(sdkmath.Int{}, errors.New("timeout")).Once()

		w := httptest.NewRecorder()
		NewFarmHandler(svc).Balance(w, httptest.NewRequest(http.MethodGet, "/api/v1/farmer/balance?identity=alice", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
