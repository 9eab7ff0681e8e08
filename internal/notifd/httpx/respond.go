// Package httpx carries the small response helpers shared by the HTTP
// handlers.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
)

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, logger zerolog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Error().Err(err).Msg("failed to encode response")
		}
	}
}

// RespondError maps a domain error to an HTTP status and writes the
// structured error body.
func RespondError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	msg := "internal server error"

	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		msg = err.Error()
	case errors.IsInvalidInput(err):
		status = http.StatusBadRequest
		code = "INVALID_INPUT"
		msg = err.Error()
	case errors.IsConflict(err):
		status = http.StatusConflict
		code = "CONFLICT"
		msg = err.Error()
	case errors.IsUnauthorized(err):
		status = http.StatusUnauthorized
		code = "UNAUTHORIZED"
		msg = err.Error()
	default:
		logger.Error().Err(err).Msg("request failed")
	}

	RespondJSON(w, logger, status, &types.Error{Code: code, Message: msg})
}
