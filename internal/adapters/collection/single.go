package collection

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dentaltrack/backend/internal/domain/providers"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// Single holds one optional value in its own slot. The session marker lives
// in a store like this, separate from the record collections.
type Single[T any] struct {
	mu   sync.Mutex
	slot providers.SlotStore
	key  string
}

// NewSingle creates a single-value store over the given slot key
func NewSingle[T any](slot providers.SlotStore, key string) *Single[T] {
	return &Single[T]{slot: slot, key: key}
}

// Get returns the stored value; ok is false when the slot is empty or its
// payload is unreadable
func (s *Single[T]) Get(ctx context.Context) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	payload, ok, err := s.slot.Read(ctx, s.key)
	if err != nil || !ok {
		return zero, false, err
	}
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return zero, false, nil
	}
	return value, true, nil
}

// Put persists value into the slot
func (s *Single[T]) Put(ctx context.Context, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewInternalError("failed to serialize slot "+s.key, err)
	}
	return s.slot.Write(ctx, s.key, payload)
}

// Clear removes the slot
func (s *Single[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot.Delete(ctx, s.key)
}
