package repositories

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// UserRepository defines data operations over clinic staff
type UserRepository interface {
	// Create appends a new user to the collection
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Update merges the patch into the stored user
	Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)

	// Delete removes a user. Treatments referencing the user are left as-is.
	Delete(ctx context.Context, id string) error

	// List returns all users in insertion order
	List(ctx context.Context) ([]*entities.User, error)
}

// SessionRepository persists the demo login marker
type SessionRepository interface {
	// Get returns the current session, or nil when logged out
	Get(ctx context.Context) (*entities.Session, error)

	// Put stores the session marker
	Put(ctx context.Context, session *entities.Session) error

	// Clear removes the session marker
	Clear(ctx context.Context) error
}
