package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors to HTTP statuses. The body shape
// {"detail": ...} is what the storefront clients already parse.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProgramNotFound),
		errors.Is(err, domain.ErrPrizeNotFound),
		errors.Is(err, domain.ErrProgressNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProgramDisabled),
		errors.Is(err, domain.ErrPrizeUnavailable),
		errors.Is(err, domain.ErrInsufficientPoints),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrNotRequested):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

// userID extracts the authenticated user forwarded by the gateway.
// Authentication itself lives outside this service.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}
