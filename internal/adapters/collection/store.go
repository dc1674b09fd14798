package collection

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dentaltrack/backend/internal/domain/providers"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// Store holds one collection as an ordered in-memory slice mirrored into a
// single slot of the backing SlotStore. Every mutation rewrites the slot
// before returning, so a read that follows a successful write always sees the
// written state. Iteration order is insertion order.
type Store[T any] struct {
	mu     sync.Mutex
	slot   providers.SlotStore
	key    string
	idOf   func(T) string
	seed   []T
	items  []T
	source repositories.LoadSource
	logger zerolog.Logger
}

// NewStore creates a collection store over the given slot key. seed is the
// dataset the collection falls back to when the slot is missing or unreadable.
func NewStore[T any](slot providers.SlotStore, key string, idOf func(T) string, seed []T, logger zerolog.Logger) *Store[T] {
	return &Store[T]{
		slot:   slot,
		key:    key,
		idOf:   idOf,
		seed:   seed,
		logger: logger.With().Str("collection", key).Logger(),
	}
}

// Load hydrates the collection from its slot. A missing slot seeds the
// collection, an unparseable one is replaced by the seed with a warning, and
// both outcomes persist the seed immediately so the next load finds it.
func (s *Store[T]) Load(ctx context.Context) (repositories.LoadSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok, err := s.slot.Read(ctx, s.key)
	if err != nil {
		return "", err
	}
	if !ok {
		s.source = repositories.LoadSourceSeeded
		return s.source, s.commit(ctx, slices.Clone(s.seed))
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.Warn().Err(err).Msg("slot payload unreadable, restoring seed data")
		s.source = repositories.LoadSourceRecovered
		return s.source, s.commit(ctx, slices.Clone(s.seed))
	}

	s.items = items
	s.source = repositories.LoadSourceLoaded
	return s.source, nil
}

// Source reports how the collection was last hydrated
func (s *Store[T]) Source() repositories.LoadSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// commit persists next and only then makes it the live slice, so a failed
// write leaves the in-memory state untouched. Callers hold s.mu.
func (s *Store[T]) commit(ctx context.Context, next []T) error {
	payload, err := json.Marshal(next)
	if err != nil {
		return apperrors.NewInternalError("failed to serialize collection "+s.key, err)
	}
	if err := s.slot.Write(ctx, s.key, payload); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool {
		return s.idOf(item) == id
	})
}

// List returns the collection in insertion order
func (s *Store[T]) List(_ context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Filter returns the items matching pred, in insertion order
func (s *Store[T]) Filter(_ context.Context, pred func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []T
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Get returns the item with the given id
func (s *Store[T]) Get(_ context.Context, id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends item and persists the collection
func (s *Store[T]) Add(ctx context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(s.items)
	next = append(next, item)
	return s.commit(ctx, next)
}

// Update applies fn to the item with the given id under the store lock and
// persists the result. fn receives a copy and returns the replacement.
func (s *Store[T]) Update(ctx context.Context, id string, fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, apperrors.NewNotFoundError("record not found: " + id)
	}
	next := slices.Clone(s.items)
	next[i] = fn(next[i])
	if err := s.commit(ctx, next); err != nil {
		return zero, err
	}
	return next[i], nil
}

// Replace swaps in item wholesale, matching on its id
func (s *Store[T]) Replace(ctx context.Context, item T) error {
	_, err := s.Update(ctx, s.idOf(item), func(T) T { return item })
	return err
}

// Delete removes the item with the given id and persists the collection
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NewNotFoundError("record not found: " + id)
	}
	next := slices.Clone(s.items)
	next = slices.Delete(next, i, i+1)
	return s.commit(ctx, next)
}

// DeleteWhere removes every item matching pred and returns how many went.
// after, when non-nil, rewrites the survivors before they are persisted,
// which is how template stages get renumbered after a deletion.
func (s *Store[T]) DeleteWhere(ctx context.Context, pred func(T) bool, after func([]T) []T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next []T
	removed := 0
	for _, item := range s.items {
		if pred(item) {
			removed++
			continue
		}
		next = append(next, item)
	}
	if removed == 0 {
		return 0, nil
	}
	if after != nil {
		next = after(next)
	}
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// ResetToSeed restores the collection to its seed dataset
func (s *Store[T]) ResetToSeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, slices.Clone(s.seed)); err != nil {
		return err
	}
	s.source = repositories.LoadSourceSeeded
	return nil
}
