package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/adapters/collection"
)

// memSlot is an in-memory slot store with per-key write failure injection,
// standing in for the durable backends in service tests
type memSlot struct {
	mu        sync.Mutex
	slots     map[string][]byte
	failWrite map[string]error
	failNth   map[string]int
	failErr   map[string]error
}

func newMemSlot() *memSlot {
	return &memSlot{
		slots:     map[string][]byte{},
		failWrite: map[string]error{},
		failNth:   map[string]int{},
		failErr:   map[string]error{},
	}
}

func (m *memSlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.slots[key]
	return payload, ok, nil
}

func (m *memSlot) Write(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failWrite[key]; err != nil {
		return err
	}
	if n, ok := m.failNth[key]; ok {
		if n == 1 {
			delete(m.failNth, key)
			return m.failErr[key]
		}
		m.failNth[key] = n - 1
	}
	m.slots[key] = payload
	return nil
}

func (m *memSlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

func (m *memSlot) Close() error { return nil }

func (m *memSlot) failWritesTo(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite[key] = err
}

// failNthWriteTo makes only the nth upcoming write to key fail; writes before
// and after it succeed
func (m *memSlot) failNthWriteTo(key string, n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNth[key] = n
	m.failErr[key] = err
}

// newSeededCollections builds collections over an in-memory slot store and
// hydrates every one from the seed dataset
func newSeededCollections(t *testing.T) (*collection.Collections, *memSlot) {
	t.Helper()
	slot := newMemSlot()
	collections := collection.NewCollections(slot, zerolog.Nop())
	_, err := collections.LoadAll(context.Background())
	require.NoError(t, err)
	return collections, slot
}
