package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/KaleFarm_Go/internal/logger"
)

// maxRequestBodyBytes bounds every JSON request body
const maxRequestBodyBytes = 1 << 16

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetIdentityParam reads and validates the identity query parameter
func GetIdentityParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	identity, ok := GetQueryParam(r, w, paramIdentity)
	if !ok {
		return "", false
	}
	if err := GetValidator().ValidateVar(identity, identityTag); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  fmt.Sprintf(ErrMsgInvalidQueryParam, paramIdentity),
			Fields: map[string]string{paramIdentity: validationMessage(identityRule)},
		})
		return "", false
	}
	return identity, true
}
