package controller

import (
	"net/http"

	"storesetup-backend/usecase"
)

type SetupController struct {
	usecase *usecase.SessionUsecase
}

func NewSetupController(usecase *usecase.SessionUsecase) *SetupController {
	return &SetupController{usecase: usecase}
}

// HandleSession returns the merchant's in-progress setup session,
// creating it lazily on first visit.
func (c *SetupController) HandleSession(w http.ResponseWriter, r *http.Request) {
	// CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Merchant-Id")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mid := merchantID(r)
	if mid == "" {
		writeError(w, usecase.ErrUnauthorized)
		return
	}

	session, err := c.usecase.GetOrCreate(mid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
