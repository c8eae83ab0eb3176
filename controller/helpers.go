package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"storesetup-backend/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// merchantID is the authenticated caller. Requests without it are
// rejected before any work happens.
func merchantID(r *http.Request) string {
	return r.Header.Get("X-Merchant-Id")
}
