package controller

import (
	"encoding/json"
	"net/http"

	"storesetup-backend/usecase"
)

type ChatController struct {
	usecase *usecase.ChatUsecase
}

func NewChatController(usecase *usecase.ChatUsecase) *ChatController {
	return &ChatController{usecase: usecase}
}

func (c *ChatController) HandleChat(w http.ResponseWriter, r *http.Request) {
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
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecase.ErrInvalidInput)
		return
	}

	userMsg, aiMsg, err := c.usecase.SendMessage(r.Context(), mid, req.SessionID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userMessage":      userMsg,
		"assistantMessage": aiMsg,
	})
}

func (c *ChatController) HandleMessages(w http.ResponseWriter, r *http.Request) {
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

	msgs, err := c.usecase.Messages(mid, r.URL.Query().Get("sessionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if msgs == nil {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
