package collection

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface over a collection store
type UserAdapter struct {
	store *Store[entities.User]
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(store *Store[entities.User]) repositories.UserRepository {
	return &UserAdapter{store: store}
}

// Create appends a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	return a.store.Add(ctx, *user)
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found: " + id)
	}
	return &user, nil
}

// Update merges the patch into the stored user
func (a *UserAdapter) Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	user, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. Treatments referencing the user are left as-is.
func (a *UserAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all users in insertion order
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	return toPtrs(a.store.List(ctx)), nil
}

// SessionAdapter implements the SessionRepository interface over a
// single-value store
type SessionAdapter struct {
	store *Single[entities.Session]
}

// NewSessionAdapter creates a new session adapter
func NewSessionAdapter(store *Single[entities.Session]) repositories.SessionRepository {
	return &SessionAdapter{store: store}
}

// Get returns the current session, or nil when logged out
func (a *SessionAdapter) Get(ctx context.Context) (*entities.Session, error) {
	session, ok, err := a.store.Get(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

// Put stores the session marker
func (a *SessionAdapter) Put(ctx context.Context, session *entities.Session) error {
	return a.store.Put(ctx, *session)
}

// Clear removes the session marker
func (a *SessionAdapter) Clear(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func toPtrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
