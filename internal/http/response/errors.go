package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/pkg/logger"
)

// ErrorResponse is the JSON error body returned on every failure path.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Common error codes
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// WriteError writes a structured JSON error response
func WriteError(w http.ResponseWriter, statusCode int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// WriteDomainError maps a ledger error onto the HTTP taxonomy: validation
// failures are 400, capacity rejections 409, missing records 404, anything
// else is a 500 with the detail kept out of the body.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
	case errors.Is(err, domain.ErrCapacityExceeded):
		WriteError(w, http.StatusConflict, "Room is fully booked for the requested dates", CodeCapacityExceeded)
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Booking not found", CodeNotFound)
	default:
		WriteError(w, http.StatusInternalServerError, "Something went wrong", CodeInternalError)
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message, CodeInvalidInput)
}

func Unauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

func InternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message, CodeInternalError)
}
