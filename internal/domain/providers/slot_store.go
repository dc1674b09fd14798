package providers

import "context"

// SlotStore is a durable key-value store with one slot per entity collection,
// each slot holding a serialized array of that entity type. Implementations
// only move bytes; all (de)serialization and fallback policy live in the
// collection layer above.
type SlotStore interface {
	// Read returns the slot's payload. ok is false when the slot is absent;
	// err reports infrastructure failures only.
	Read(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Write replaces the slot's payload atomically with respect to Read
	Write(ctx context.Context, key string, payload []byte) error

	// Delete removes the slot; deleting an absent slot is not an error
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources
	Close() error
}
