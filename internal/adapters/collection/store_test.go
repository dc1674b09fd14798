package collection_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// memSlot is an in-memory slot store with per-key write failure injection
type memSlot struct {
	mu        sync.Mutex
	slots     map[string][]byte
	failWrite map[string]error
}

func newMemSlot() *memSlot {
	return &memSlot{slots: map[string][]byte{}, failWrite: map[string]error{}}
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

type widget struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"orderIndex"`
}

func widgetStore(slot *memSlot, seed []widget) *collection.Store[widget] {
	return collection.NewStore(slot, "test_widgets",
		func(w widget) string { return w.ID }, seed, zerolog.Nop())
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	seed := []widget{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}

	t.Run("missing slot seeds the collection and persists it", func(t *testing.T) {
		slot := newMemSlot()
		store := widgetStore(slot, seed)

		source, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, repositories.LoadSourceSeeded, source)
		assert.Equal(t, seed, store.List(ctx))
		assert.JSONEq(t, `[{"id":"1","name":"first","orderIndex":0},{"id":"2","name":"second","orderIndex":0}]`,
			string(slot.slots["test_widgets"]))
	})

	t.Run("well-formed slot wins over the seed", func(t *testing.T) {
		slot := newMemSlot()
		slot.slots["test_widgets"] = []byte(`[{"id":"9","name":"stored"}]`)
		store := widgetStore(slot, seed)

		source, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, repositories.LoadSourceLoaded, source)
		assert.Equal(t, []widget{{ID: "9", Name: "stored"}}, store.List(ctx))
	})

	t.Run("corrupt slot falls back to the seed and overwrites it", func(t *testing.T) {
		slot := newMemSlot()
		slot.slots["test_widgets"] = []byte(`{"not":"an array"`)
		store := widgetStore(slot, seed)

		source, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, repositories.LoadSourceRecovered, source)
		assert.Equal(t, seed, store.List(ctx))
		assert.JSONEq(t, `[{"id":"1","name":"first","orderIndex":0},{"id":"2","name":"second","orderIndex":0}]`,
			string(slot.slots["test_widgets"]))
	})
}

func TestStore_Mutations(t *testing.T) {
	ctx := context.Background()

	newLoaded := func(t *testing.T, seed []widget) (*collection.Store[widget], *memSlot) {
		t.Helper()
		slot := newMemSlot()
		store := widgetStore(slot, seed)
		_, err := store.Load(ctx)
		require.NoError(t, err)
		return store, slot
	}

	t.Run("add persists before returning", func(t *testing.T) {
		store, slot := newLoaded(t, nil)

		require.NoError(t, store.Add(ctx, widget{ID: "1", Name: "fresh"}))

		assert.JSONEq(t, `[{"id":"1","name":"fresh","orderIndex":0}]`, string(slot.slots["test_widgets"]))
	})

	t.Run("failed write leaves memory untouched", func(t *testing.T) {
		store, slot := newLoaded(t, []widget{{ID: "1", Name: "kept"}})
		slot.failWrite["test_widgets"] = errors.New("disk full")

		err := store.Add(ctx, widget{ID: "2", Name: "lost"})

		require.Error(t, err)
		assert.Equal(t, []widget{{ID: "1", Name: "kept"}}, store.List(ctx))
	})

	t.Run("update applies fn to the matching item", func(t *testing.T) {
		store, _ := newLoaded(t, []widget{{ID: "1", Name: "old"}})

		updated, err := store.Update(ctx, "1", func(w widget) widget {
			w.Name = "new"
			return w
		})

		require.NoError(t, err)
		assert.Equal(t, "new", updated.Name)
	})

	t.Run("update of a missing id is not found", func(t *testing.T) {
		store, _ := newLoaded(t, nil)

		_, err := store.Update(ctx, "ghost", func(w widget) widget { return w })

		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	})

	t.Run("delete of a missing id is not found", func(t *testing.T) {
		store, _ := newLoaded(t, nil)

		err := store.Delete(ctx, "ghost")

		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	})

	t.Run("delete preserves insertion order of survivors", func(t *testing.T) {
		store, _ := newLoaded(t, []widget{{ID: "1"}, {ID: "2"}, {ID: "3"}})

		require.NoError(t, store.Delete(ctx, "2"))

		assert.Equal(t, []widget{{ID: "1"}, {ID: "3"}}, store.List(ctx))
	})
}

func TestStore_DeleteWhere(t *testing.T) {
	ctx := context.Background()
	seed := []widget{
		{ID: "1", OrderIndex: 1},
		{ID: "2", OrderIndex: 2},
		{ID: "3", OrderIndex: 3},
	}
	slot := newMemSlot()
	store := widgetStore(slot, seed)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	t.Run("after hook rewrites survivors in the same commit", func(t *testing.T) {
		removed, err := store.DeleteWhere(ctx,
			func(w widget) bool { return w.ID == "2" },
			func(survivors []widget) []widget {
				for i := range survivors {
					survivors[i].OrderIndex = i + 1
				}
				return survivors
			})

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, []widget{{ID: "1", OrderIndex: 1}, {ID: "3", OrderIndex: 2}}, store.List(ctx))
	})

	t.Run("no matches means no write", func(t *testing.T) {
		removed, err := store.DeleteWhere(ctx,
			func(w widget) bool { return w.ID == "ghost" }, nil)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestStore_ResetToSeed(t *testing.T) {
	ctx := context.Background()
	seed := []widget{{ID: "1", Name: "seeded"}}
	slot := newMemSlot()
	store := widgetStore(slot, seed)
	_, err := store.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Add(ctx, widget{ID: "2", Name: "extra"}))
	require.NoError(t, store.ResetToSeed(ctx))

	assert.Equal(t, seed, store.List(ctx))
	assert.Equal(t, repositories.LoadSourceSeeded, store.Source())
}

func TestSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		slot := newMemSlot()
		single := collection.NewSingle[widget](slot, "test_current")

		_, ok, err := single.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, single.Put(ctx, widget{ID: "1", Name: "active"}))

		got, ok, err := single.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "active", got.Name)

		require.NoError(t, single.Clear(ctx))

		_, ok, err = single.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unreadable payload reads as absent", func(t *testing.T) {
		slot := newMemSlot()
		slot.slots["test_current"] = []byte(`not json`)
		single := collection.NewSingle[widget](slot, "test_current")

		_, ok, err := single.Get(ctx)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
