package observability

import (
	"context"
	"time"

	"github.com/dentaltrack/backend/internal/domain/providers"
)

// InstrumentedSlotStore wraps a SlotStore and records an operation-duration
// metric per read, write and delete
type InstrumentedSlotStore struct {
	inner   providers.SlotStore
	metrics *Metrics
}

// NewInstrumentedSlotStore wraps store; with nil metrics it is a pass-through
func NewInstrumentedSlotStore(store providers.SlotStore, metrics *Metrics) providers.SlotStore {
	if metrics == nil {
		return store
	}
	return &InstrumentedSlotStore{inner: store, metrics: metrics}
}

// Read delegates to the wrapped store and records the duration
func (s *InstrumentedSlotStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	payload, ok, err := s.inner.Read(ctx, key)
	RecordStoreMetric(ctx, s.metrics, "read", key, time.Since(start))
	return payload, ok, err
}

// Write delegates to the wrapped store and records the duration
func (s *InstrumentedSlotStore) Write(ctx context.Context, key string, payload []byte) error {
	start := time.Now()
	err := s.inner.Write(ctx, key, payload)
	RecordStoreMetric(ctx, s.metrics, "write", key, time.Since(start))
	return err
}

// Delete delegates to the wrapped store and records the duration
func (s *InstrumentedSlotStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	RecordStoreMetric(ctx, s.metrics, "delete", key, time.Since(start))
	return err
}

// Close releases the wrapped store
func (s *InstrumentedSlotStore) Close() error {
	return s.inner.Close()
}
