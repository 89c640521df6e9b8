package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

// writeErr sends JSON { "error": message, "code": errCode }. If errCode is
// empty, a default is derived from the HTTP status.
func writeErr(w http.ResponseWriter, code int, errCode string, message string) {
	if errCode == "" {
		errCode = defaultErrCode(code)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}

func defaultErrCode(httpCode int) string {
	switch httpCode {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
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

// respondError maps domain errors to HTTP statuses, one place for every
// handler. Unknown errors become a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domerrors.ErrInvalidDate),
		errors.Is(err, domerrors.ErrInvalidMonth),
		errors.Is(err, domerrors.ErrInvalidMinutes),
		errors.Is(err, domerrors.ErrInvalidProjectName),
		errors.Is(err, domerrors.ErrInvalidDayType),
		errors.Is(err, domerrors.ErrDuplicateName),
		errors.Is(err, domerrors.ErrDuplicateAssignment),
		errors.Is(err, domerrors.ErrRoleNotHeld):
		writeErr(w, http.StatusBadRequest, "", err.Error())
	case errors.Is(err, domerrors.ErrNotAssigned),
		errors.Is(err, domerrors.ErrNotOwner):
		writeErr(w, http.StatusForbidden, "", err.Error())
	case errors.Is(err, domerrors.ErrNotFound),
		errors.Is(err, domerrors.ErrUserNotFound):
		writeErr(w, http.StatusNotFound, "", err.Error())
	case errors.Is(err, domerrors.ErrSessionNotFound):
		writeErr(w, http.StatusUnauthorized, "", err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, "", "internal error")
	}
}
