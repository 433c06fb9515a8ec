package handler

import (
	"net/http"
	"time"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/miner"
)

// CycleRequest runs plant, work and harvest in one call
type CycleRequest struct {
	Identity   string `json:"identity" validate:"required,max=128,identity"`
	Stake      string `json:"stake" validate:"omitempty,amount"`
	Difficulty uint32 `json:"difficulty" validate:"max=40"`
}

// SolveRequest asks for a nonce valid for the identity's current session
type SolveRequest struct {
	Identity   string `json:"identity" validate:"required,max=128,identity"`
	Difficulty uint32 `json:"difficulty" validate:"max=40"`
}

// MinerStartRequest starts a background mining loop
type MinerStartRequest struct {
	Identity   string `json:"identity" validate:"required,max=128,identity"`
	Stake      string `json:"stake" validate:"omitempty,amount"`
	Difficulty uint32 `json:"difficulty" validate:"max=40"`
	IntervalMs int64  `json:"interval_ms" validate:"gte=0"`
}

// MinerStopRequest stops a background mining loop
type MinerStopRequest struct {
	Identity string `json:"identity" validate:"required,max=128,identity"`
}

// MinerStatsResponse is the mining summary plus the derived success rate
type MinerStatsResponse struct {
	domain.MiningStats
	SuccessRate float64 `json:"success_rate"`
}

// MinerHandler handles solver, full cycle and background mining requests
type MinerHandler struct {
	minerSvc miner.Service
}

// NewMinerHandler creates a new miner handler
func NewMinerHandler(minerSvc miner.Service) *MinerHandler {
	return &MinerHandler{minerSvc: minerSvc}
}

// Cycle runs a full plant -> work -> harvest cycle
// @Summary Full farm cycle
// @Description Plants, solves, works and harvests. A failed solve or rejected work is reported in the result.
// @Tags farm
// @Accept json
// @Produce json
// @Param request body CycleRequest true "Cycle request"
// @Success 200 {object} domain.CycleResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/farm/cycle [post]
func (h *MinerHandler) Cycle(w http.ResponseWriter, r *http.Request) {
	var req CycleRequest
	if err := DecodeAndValidateRequest(r, w, &req, opCycle); err != nil {
		return
	}
	stake, _ := parseAmount(req.Stake)

	result, err := h.minerSvc.FarmCycle(r.Context(), req.Identity, stake, req.Difficulty)
	if err != nil {
		respondServiceError(w, r, opCycle, err)
		return
	}

	logger.FromContext(r.Context()).Info("Farm cycle served",
		"identity", req.Identity, "session_index", result.SessionIndex, "succeeded", result.Succeeded())
	respondJSON(w, http.StatusOK, result)
}

// Solve searches for a nonce for the identity's current session
// @Summary Solve proof of work
// @Tags pow
// @Accept json
// @Produce json
// @Param request body SolveRequest true "Solve request"
// @Success 200 {object} domain.Solution
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse "No solution within the attempt budget"
// @Router /api/v1/pow/solve [post]
func (h *MinerHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := DecodeAndValidateRequest(r, w, &req, opSolve); err != nil {
		return
	}

	sol, err := h.minerSvc.GenerateSolution(r.Context(), req.Identity, req.Difficulty)
	if err != nil {
		respondServiceError(w, r, opSolve, err)
		return
	}
	respondJSON(w, http.StatusOK, sol)
}

// Start begins a background mining loop
// @Summary Start mining
// @Tags miner
// @Accept json
// @Produce json
// @Param request body MinerStartRequest true "Start request"
// @Success 202 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Already mining"
// @Failure 503 {object} ErrorResponse "Miner shutting down"
// @Router /api/v1/miner/start [post]
func (h *MinerHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req MinerStartRequest
	if err := DecodeAndValidateRequest(r, w, &req, opMinerStart); err != nil {
		return
	}
	stake, _ := parseAmount(req.Stake)

	err := h.minerSvc.Start(r.Context(), domain.MiningOptions{
		Identity:   req.Identity,
		Stake:      stake,
		Difficulty: req.Difficulty,
		Interval:   time.Duration(req.IntervalMs) * time.Millisecond,
	})
	if err != nil {
		respondServiceError(w, r, opMinerStart, err)
		return
	}
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgMiningStarted})
}

// Stop ends a background mining loop and returns its final statistics
// @Summary Stop mining
// @Tags miner
// @Accept json
// @Produce json
// @Param request body MinerStopRequest true "Stop request"
// @Success 200 {object} MinerStatsResponse
// @Failure 404 {object} ErrorResponse "Not mining"
// @Router /api/v1/miner/stop [post]
func (h *MinerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	var req MinerStopRequest
	if err := DecodeAndValidateRequest(r, w, &req, opMinerStop); err != nil {
		return
	}

	stats, err := h.minerSvc.Stop(r.Context(), req.Identity)
	if err != nil {
		respondServiceError(w, r, opMinerStop, err)
		return
	}
	respondJSON(w, http.StatusOK, MinerStatsResponse{MiningStats: stats, SuccessRate: stats.SuccessRate()})
}

// Stats returns the mining statistics for an identity
// @Summary Mining statistics
// @Tags miner
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} MinerStatsResponse
// @Failure 404 {object} ErrorResponse "Not mining"
// @Router /api/v1/miner/stats [get]
func (h *MinerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	stats, err := h.minerSvc.Stats(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opMinerStats, err)
		return
	}
	respondJSON(w, http.StatusOK, MinerStatsResponse{MiningStats: stats, SuccessRate: stats.SuccessRate()})
}
