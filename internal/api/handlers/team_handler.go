package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// TeamService defines the interface for staff roster operations
type TeamService interface {
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]*entities.User, error)
}

// TeamHandler handles staff roster requests
type TeamHandler struct {
	service TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// ListUsers handles GET /api/team
func (h *TeamHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// CreateUser handles POST /api/team
func (h *TeamHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user entities.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.CreateUser(r.Context(), &user)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetUser handles GET /api/team/{id}
func (h *TeamHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateUser handles PATCH /api/team/{id}
func (h *TeamHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/team/{id}
func (h *TeamHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
