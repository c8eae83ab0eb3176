package controller

import (
	"encoding/json"
	"net/http"

	"storesetup-backend/usecase"
)

type CategoryController struct {
	usecase *usecase.CategoryUsecase
}

func NewCategoryController(usecase *usecase.CategoryUsecase) *CategoryController {
	return &CategoryController{usecase: usecase}
}

func (c *CategoryController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	// CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Merchant-Id")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mid := merchantID(r)
	if mid == "" {
		writeError(w, usecase.ErrUnauthorized)
		return
	}

	var in usecase.ConfirmCategoriesInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	summary, err := c.usecase.Confirm(r.Context(), mid, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
