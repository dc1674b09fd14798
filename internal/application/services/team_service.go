package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// TeamService handles the clinic staff roster
type TeamService struct {
	repo repositories.UserRepository
}

// NewTeamService creates a new team service
func NewTeamService(repo repositories.UserRepository) *TeamService {
	return &TeamService{repo: repo}
}

// CreateUser adds a staff member. The role must be one of the known roles.
func (s *TeamService) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	if user.Name == "" {
		return nil, apperrors.NewValidationError("user name is required")
	}
	if !user.Role.Valid() {
		return nil, apperrors.NewValidationError("invalid role: " + string(user.Role))
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a staff member by ID
func (s *TeamService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateUser merges the patch into the stored user
func (s *TeamService) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, apperrors.NewValidationError("invalid role: " + string(*patch.Role))
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteUser removes a staff member. Treatments assigned to the user keep
// their dentistId and simply render as unassigned.
func (s *TeamService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListUsers returns the full roster in insertion order
func (s *TeamService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.repo.List(ctx)
}
