package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/services"
)

// errorBody is the failure shape of the flight and search endpoints
type errorBody struct {
	Error string `json:"error"`
}

// respondWithJSON writes body as-is. The flight and search endpoints answer
// with bare objects; everything else uses common.RespondSuccess.
func respondWithJSON[T any](w http.ResponseWriter, statusCode int, body T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, errorBody{Error: message})
}

// statusFor maps a service error to an HTTP status and the message the
// client may see. fallback is used for everything that is not the caller's
// fault.
func statusFor(err error, fallback string) (int, string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, services.ErrFlightNotFound):
		return http.StatusNotFound, constants.MsgFlightNotFound
	case errors.Is(err, services.ErrAirportNotFound):
		return http.StatusNotFound, constants.MsgAirportNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}

// respondServiceError answers a bare-body endpoint with {"error": ...}
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code, msg := statusFor(err, fallback)
	if code >= http.StatusInternalServerError {
		logging.Error(fallback,
			"error", err.Error(),
			"method", r.Method,
			"path", r.URL.Path,
		)
	}
	respondWithError(w, code, msg)
}

// respondEnvelopeError answers an envelope endpoint with the same mapping
func respondEnvelopeError(w http.ResponseWriter, initTime time.Time, err error, fallback string) {
	code, msg := statusFor(err, fallback)
	common.RespondError(w, initTime, err, msg, code)
}
