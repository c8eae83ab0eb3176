package controller

import (
	"encoding/json"
	"net/http"

	"storesetup-backend/model"
	"storesetup-backend/usecase"
)

type ProductController struct {
	usecase *usecase.ProductUsecase
}

func NewProductController(usecase *usecase.ProductUsecase) *ProductController {
	return &ProductController{usecase: usecase}
}

func (c *ProductController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		SessionID  string                `json:"sessionId"`
		Product    model.ProposedProduct `json:"product"`
		CategoryID *string               `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	result, err := c.usecase.ConfirmSingle(r.Context(), mid, req.SessionID, req.Product, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *ProductController) HandleBulkConfirm(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		SessionID  string                  `json:"sessionId"`
		Products   []model.ProposedProduct `json:"products"`
		CategoryID *string                 `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	result, err := c.usecase.ConfirmBulk(r.Context(), mid, req.SessionID, req.Products, req.CategoryID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
