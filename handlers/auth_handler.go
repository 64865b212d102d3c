package handlers

import (
	"net/http"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(w, r, &creds); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.Login(r.Context(), creds)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	writeJSON(w, http.StatusOK, jsonResponse{"message": "logged out"}, nil)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.Session()
	if !ok {
		unauthorizedResponse(w, r, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil)
}
