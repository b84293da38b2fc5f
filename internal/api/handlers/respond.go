package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerdock/careerdock-be/internal/services"
	"github.com/careerdock/careerdock-be/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeAuthError maps a service error to its wire status and error kind.
// Anything unrecognized is reported as internal_error; the detail stays in
// the logs.
func writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"

	switch {
	case errors.Is(err, services.ErrMissingFields):
		status, kind = http.StatusBadRequest, "missing_fields"
	case errors.Is(err, services.ErrPasswordMismatch):
		status, kind = http.StatusBadRequest, "password_mismatch"
	case errors.Is(err, services.ErrPasswordTooShort):
		status, kind = http.StatusBadRequest, "password_too_short"
	case errors.Is(err, store.ErrDuplicateEmail):
		status, kind = http.StatusConflict, "duplicate_email"
	case errors.Is(err, services.ErrInvalidCredentials):
		status, kind = http.StatusUnauthorized, "invalid_credentials"
	}

	writeJSON(w, status, map[string]interface{}{
		"ok":    false,
		"error": kind,
	})
}
