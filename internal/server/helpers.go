package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/settleup/backend/internal/auth"
	"github.com/settleup/backend/internal/service"
	"github.com/settleup/backend/internal/storage"
)

// maxBodyBytes caps request bodies; nothing this API accepts is large.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func errMissingField(name string) error {
	return fmt.Errorf("%s required", name)
}

// writeServiceError maps domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrNotPaymentParty):
		writeError(w, http.StatusForbidden, err)
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNoParticipants),
		errors.Is(err, service.ErrInvalidTransfer):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, auth.ErrEmailExists):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, auth.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	default:
		slog.Error("Internal error", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
