package services

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	"github.com/dentaltrack/backend/pkg/config"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// AuthService handles the demo login gate. A single configured credential
// grants access; the session marker is persisted so a restart keeps the
// login state.
type AuthService struct {
	sessions repositories.SessionRepository
	cred     config.AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(sessions repositories.SessionRepository, cred config.AuthConfig) *AuthService {
	return &AuthService{sessions: sessions, cred: cred}
}

// Login checks the demo credential and persists the session marker
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.Session, error) {
	if email != s.cred.DemoEmail || password != s.cred.DemoPassword {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	session := &entities.Session{
		Email: s.cred.DemoEmail,
		Name:  s.cred.DemoName,
		Role:  s.cred.DemoRole,
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout clears the session marker
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the active session, or nil when logged out
func (s *AuthService) Current(ctx context.Context) (*entities.Session, error) {
	return s.sessions.Get(ctx)
}
