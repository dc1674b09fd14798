package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// AuthService defines the interface for the demo login gate
type AuthService interface {
	Login(ctx context.Context, email, password string) (*entities.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*entities.Session, error)
}

// AuthHandler handles login requests
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Current(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if session == nil {
		respondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}
