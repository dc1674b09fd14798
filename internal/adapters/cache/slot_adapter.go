package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dentaltrack/backend/internal/domain/providers"
	redisclient "github.com/dentaltrack/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// SlotAdapter implements the SlotStore provider on Redis. Each collection is
// one key holding its serialized array, written without expiration so Redis
// acts as durable storage here, not a cache.
type SlotAdapter struct {
	client *redisclient.Client
	prefix string
}

// NewSlotAdapter creates a Redis slot store; prefix namespaces the keys
func NewSlotAdapter(client *redisclient.Client, prefix string) *SlotAdapter {
	return &SlotAdapter{client: client, prefix: prefix}
}

var _ providers.SlotStore = (*SlotAdapter)(nil)

func (a *SlotAdapter) key(key string) string {
	if a.prefix == "" {
		return key
	}
	return a.prefix + ":" + key
}

// Read returns the slot payload; ok is false when the key is absent
func (a *SlotAdapter) Read(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := a.client.Client().Get(ctx, a.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStorageError("failed to read slot "+key, err)
	}
	return payload, true, nil
}

// Write stores the payload under the slot key with no expiration
func (a *SlotAdapter) Write(ctx context.Context, key string, payload []byte) error {
	if err := a.client.Client().Set(ctx, a.key(key), payload, 0).Err(); err != nil {
		return apperrors.NewStorageError("failed to write slot "+key, err)
	}
	return nil
}

// Delete removes the slot key; a missing key is not an error
func (a *SlotAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, a.key(key)).Err(); err != nil {
		return apperrors.NewStorageError("failed to delete slot "+key, err)
	}
	return nil
}

// Close releases the underlying Redis client
func (a *SlotAdapter) Close() error {
	return a.client.Close()
}
