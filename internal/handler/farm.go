package handler

import (
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/farm"
	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// PlantRequest starts a new session for an identity
type PlantRequest struct {
	Identity string `json:"identity" validate:"required,max=128,identity"`
	Stake    string `json:"stake" validate:"omitempty,amount"`
}

// WorkRequest submits a nonce with its claimed zero run
type WorkRequest struct {
	Identity     string `json:"identity" validate:"required,max=128,identity"`
	Nonce        uint64 `json:"nonce"`
	ZerosClaimed uint32 `json:"zeros_claimed"`
}

// HarvestRequest claims the reward for a worked session
type HarvestRequest struct {
	Identity     string `json:"identity" validate:"required,max=128,identity"`
	SessionIndex uint32 `json:"session_index"`
}

// PlantResponse carries the assigned session index
type PlantResponse struct {
	Identity     string `json:"identity"`
	SessionIndex uint32 `json:"session_index"`
}

// WorkResponse reports whether the work was accepted
type WorkResponse struct {
	Identity string `json:"identity"`
	Accepted bool   `json:"accepted"`
}

// HarvestResponse carries the credited reward, zero when nothing was harvested
type HarvestResponse struct {
	Identity string      `json:"identity"`
	Reward   sdkmath.Int `json:"reward"`
}

// TotalStakedResponse carries the sum of all stakes
type TotalStakedResponse struct {
	TotalStaked sdkmath.Int `json:"total_staked"`
}

// SessionIndexResponse carries the last assigned session index
type SessionIndexResponse struct {
	SessionIndex uint32 `json:"session_index"`
}

// AmountResponse carries a per-farmer amount
type AmountResponse struct {
	Identity string      `json:"identity"`
	Amount   sdkmath.Int `json:"amount"`
}

// StatusResponse carries the planted/worked/harvested flags
type StatusResponse struct {
	Identity string `json:"identity"`
	domain.FarmerStatus
}

// FarmHandler handles farm lifecycle and query requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc}
}

// Initialize resets the global counters
// @Summary Initialize farm
// @Description Resets the session counter and total staked. Farmer records are kept.
// @Tags farm
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/farm/initialize [post]
func (h *FarmHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.farmSvc.Initialize(r.Context()); err != nil {
		respondServiceError(w, r, opInitialize, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFarmInitialized})
}

// Plant starts a new session
// @Summary Plant
// @Description Starts a new session for the identity, replacing any previous record
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 201 {object} PlantResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/plant [post]
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, opPlant); err != nil {
		return
	}
	stake, _ := parseAmount(req.Stake)

	idx, err := h.farmSvc.Plant(r.Context(), req.Identity, stake)
	if err != nil {
		respondServiceError(w, r, opPlant, err)
		return
	}

	logger.FromContext(r.Context()).Info("Plant request served", "identity", req.Identity, "session_index", idx)
	respondJSON(w, http.StatusCreated, PlantResponse{Identity: req.Identity, SessionIndex: idx})
}

// Work submits a proof-of-work nonce
// @Summary Work
// @Description Accepts the nonce if its digest reaches the claimed zero run
// @Tags farm
// @Accept json
// @Produce json
// @Param request body WorkRequest true "Work request"
// @Success 200 {object} WorkResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Farmer not found"
// @Router /api/v1/farm/work [post]
func (h *FarmHandler) Work(w http.ResponseWriter, r *http.Request) {
	var req WorkRequest
	if err := DecodeAndValidateRequest(r, w, &req, opWork); err != nil {
		return
	}

	accepted, err := h.farmSvc.Work(r.Context(), req.Identity, req.Nonce, req.ZerosClaimed)
	if err != nil {
		respondServiceError(w, r, opWork, err)
		return
	}
	respondJSON(w, http.StatusOK, WorkResponse{Identity: req.Identity, Accepted: accepted})
}

// Harvest claims the session reward
// @Summary Harvest
// @Description Credits base + per-zero bonus + elapsed minutes; zero if not worked or already harvested
// @Tags farm
// @Accept json
// @Produce json
// @Param request body HarvestRequest true "Harvest request"
// @Success 200 {object} HarvestResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Farmer not found"
// @Router /api/v1/farm/harvest [post]
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, opHarvest); err != nil {
		return
	}

	reward, err := h.farmSvc.Harvest(r.Context(), req.Identity, req.SessionIndex)
	if err != nil {
		respondServiceError(w, r, opHarvest, err)
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{Identity: req.Identity, Reward: reward})
}

// TotalStaked returns the sum of all stakes
// @Summary Total staked
// @Tags farm
// @Produce json
// @Success 200 {object} TotalStakedResponse
// @Router /api/v1/farm/total-staked [get]
func (h *FarmHandler) TotalStaked(w http.ResponseWriter, r *http.Request) {
	total, err := h.farmSvc.TotalStaked(r.Context())
	if err != nil {
		respondServiceError(w, r, opTotalStaked, err)
		return
	}
	respondJSON(w, http.StatusOK, TotalStakedResponse{TotalStaked: total})
}

// SessionIndex returns the last assigned session index
// @Summary Current session index
// @Tags farm
// @Produce json
// @Success 200 {object} SessionIndexResponse
// @Router /api/v1/farm/session-index [get]
func (h *FarmHandler) SessionIndex(w http.ResponseWriter, r *http.Request) {
	idx, err := h.farmSvc.CurrentSessionIndex(r.Context())
	if err != nil {
		respondServiceError(w, r, opSessionIndex, err)
		return
	}
	respondJSON(w, http.StatusOK, SessionIndexResponse{SessionIndex: idx})
}

// Balance returns a farmer's balance, zero for unknown identities
// @Summary Farmer balance
// @Tags farmer
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} AmountResponse
// @Router /api/v1/farmer/balance [get]
func (h *FarmHandler) Balance(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	balance, err := h.farmSvc.BalanceOf(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opBalance, err)
		return
	}
	respondJSON(w, http.StatusOK, AmountResponse{Identity: identity, Amount: balance})
}

// TotalEarned returns a farmer's lifetime earnings
// @Summary Farmer total earned
// @Tags farmer
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} AmountResponse
// @Router /api/v1/farmer/total-earned [get]
func (h *FarmHandler) TotalEarned(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	earned, err := h.farmSvc.TotalEarnedOf(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opTotalEarned, err)
		return
	}
	respondJSON(w, http.StatusOK, AmountResponse{Identity: identity, Amount: earned})
}

// Status returns a farmer's lifecycle flags
// @Summary Farmer status
// @Tags farmer
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} StatusResponse
// @Router /api/v1/farmer/status [get]
func (h *FarmHandler) Status(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	status, err := h.farmSvc.StatusOf(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opStatus, err)
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{Identity: identity, FarmerStatus: status})
}

// Farmer returns the full farmer record
// @Summary Farmer record
// @Tags farmer
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} domain.FarmerRecord
// @Router /api/v1/farmer [get]
func (h *FarmHandler) Farmer(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	rec, err := h.farmSvc.Farmer(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opFarmer, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Challenge returns the solver inputs for the farmer's current session
// @Summary Work challenge
// @Tags farmer
// @Produce json
// @Param identity query string true "Farmer identity"
// @Success 200 {object} domain.WorkChallenge
// @Router /api/v1/farmer/challenge [get]
func (h *FarmHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentityParam(r, w)
	if !ok {
		return
	}
	ch, err := h.farmSvc.Challenge(r.Context(), identity)
	if err != nil {
		respondServiceError(w, r, opChallenge, err)
		return
	}
	respondJSON(w, http.StatusOK, ch)
}
