package controller

import (
	"encoding/json"
	"net/http"

	"storesetup-backend/model"
	"storesetup-backend/usecase"
)

type BrandingController struct {
	usecase *usecase.BrandingUsecase
}

func NewBrandingController(usecase *usecase.BrandingUsecase) *BrandingController {
	return &BrandingController{usecase: usecase}
}

func brandingCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Merchant-Id")
}

func (c *BrandingController) guard(w http.ResponseWriter, r *http.Request) (string, bool) {
	brandingCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return "", false
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	mid := merchantID(r)
	if mid == "" {
		writeError(w, usecase.ErrUnauthorized)
		return "", false
	}
	return mid, true
}

func (c *BrandingController) HandleThemeConfirm(w http.ResponseWriter, r *http.Request) {
	mid, proceed := c.guard(w, r)
	if !proceed {
		return
	}

	var req struct {
		SessionID string `json:"sessionId"`
		ThemeID   string `json:"themeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	session, err := c.usecase.ConfirmTheme(r.Context(), mid, req.SessionID, req.ThemeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (c *BrandingController) HandleLogoConfirm(w http.ResponseWriter, r *http.Request) {
	mid, proceed := c.guard(w, r)
	if !proceed {
		return
	}

	var req struct {
		SessionID string `json:"sessionId"`
		Image     string `json:"image"` // data URI or hosted URL
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	logoURL, session, err := c.usecase.ConfirmLogo(r.Context(), mid, req.SessionID, req.Image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logoUrl": logoURL,
		"session": session,
	})
}

func (c *BrandingController) HandleLandingConfirm(w http.ResponseWriter, r *http.Request) {
	mid, proceed := c.guard(w, r)
	if !proceed {
		return
	}

	var req struct {
		SessionID string          `json:"sessionId"`
		Content   json.RawMessage `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	session, err := c.usecase.ConfirmLandingPage(r.Context(), mid, req.SessionID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (c *BrandingController) HandleCouponConfirm(w http.ResponseWriter, r *http.Request) {
	mid, proceed := c.guard(w, r)
	if !proceed {
		return
	}

	var req struct {
		SessionID string                  `json:"sessionId"`
		Coupon    model.PreviewCouponData `json:"coupon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	coupon, err := c.usecase.ConfirmCoupon(r.Context(), mid, req.SessionID, req.Coupon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}
