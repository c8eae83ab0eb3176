package controller

import (
	"net/http"

	"storesetup-backend/usecase"
)

type OAuthController struct {
	usecase *usecase.OAuthUsecase
}

func NewOAuthController(usecase *usecase.OAuthUsecase) *OAuthController {
	return &OAuthController{usecase: usecase}
}

// HandleAuthorize redirects the merchant to the platform's consent page.
func (c *OAuthController) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mid := merchantID(r)
	if mid == "" {
		writeError(w, usecase.ErrUnauthorized)
		return
	}
	target, err := c.usecase.AuthorizeURL(mid)
	if err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// HandleCallback finishes the code exchange and records the connected
// store.
func (c *OAuthController) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	store, err := c.usecase.HandleCallback(r.Context(), r.URL.Query().Get("code"), r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store)
}
