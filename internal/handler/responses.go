package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/KaleFarm_Go/internal/domain"
	"github.com/osse101/KaleFarm_Go/internal/logger"
	"github.com/osse101/KaleFarm_Go/internal/pow"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool holds encode buffers so responses do not allocate per request
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgFarmerNotFoundError  = "Farmer not found. Plant first."
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgCounterOverflowError = "Session counter exhausted"
	ErrMsgAlreadyMiningError   = "Already mining for this identity"
	ErrMsgNotMiningError       = "Not mining for this identity"
	ErrMsgMinerStoppedError    = "Miner is shutting down"
	ErrMsgNoSolutionError      = "No valid nonce found within the attempt budget"
	ErrMsgDifficultyError      = "Difficulty is higher than any digest can reach"
	ErrMsgTimeoutError         = "Request timed out. Please try again."
)

// mapServiceError maps domain errors to HTTP status codes and user-facing messages
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrFarmerNotFound):
		return http.StatusNotFound, ErrMsgFarmerNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrSessionCounterOverflow):
		return http.StatusConflict, ErrMsgCounterOverflowError
	case errors.Is(err, domain.ErrAlreadyMining):
		return http.StatusConflict, ErrMsgAlreadyMiningError
	case errors.Is(err, domain.ErrNotMining):
		return http.StatusNotFound, ErrMsgNotMiningError
	case errors.Is(err, domain.ErrMinerStopped):
		return http.StatusServiceUnavailable, ErrMsgMinerStoppedError
	case errors.Is(err, pow.ErrNoSolution):
		return http.StatusUnprocessableEntity, ErrMsgNoSolutionError
	case errors.Is(err, pow.ErrInvalidDifficulty):
		return http.StatusBadRequest, ErrMsgDifficultyError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
