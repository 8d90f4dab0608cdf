package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

const maxBodyBytes = 1 << 20

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is empty, a default is used from code.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	writeJSON(w, code, map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// writeDomainErr maps a use case or repository error to its HTTP status.
// Anything unclassified is logged and answered with a generic 500.
func writeDomainErr(w http.ResponseWriter, log zerolog.Logger, err error, op string) {
	switch {
	case errors.Is(err, domerrors.ErrValidation):
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, domerrors.Reason(err))
	case errors.Is(err, domerrors.ErrNotFound):
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, domerrors.Reason(err)+" not found")
	case errors.Is(err, domerrors.ErrConflict):
		writeErr(w, http.StatusConflict, ErrCodeConflict, domerrors.Reason(err))
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, domerrors.ErrMissingCredential), errors.Is(err, domerrors.ErrUnauthenticated):
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	default:
		log.Error().Err(err).Str("op", op).Msg("request failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

// decodeBody reads a JSON body into v and validates its struct tags.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := decodeJSON(w, r, v); err != nil {
		return err
	}
	return validateStruct(v)
}

// decodeJSON reads a JSON body into v without validating, for handlers that
// normalise fields first.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domerrors.Validation("invalid body")
	}
	return nil
}
