package collection

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// FinancialAdapter implements the FinancialRepository interface over a
// collection store
type FinancialAdapter struct {
	store *Store[entities.FinancialRecord]
}

// NewFinancialAdapter creates a new financial adapter
func NewFinancialAdapter(store *Store[entities.FinancialRecord]) repositories.FinancialRepository {
	return &FinancialAdapter{store: store}
}

// Create appends a new record
func (a *FinancialAdapter) Create(ctx context.Context, record *entities.FinancialRecord) error {
	return a.store.Add(ctx, *record)
}

// GetByID retrieves a record by ID
func (a *FinancialAdapter) GetByID(ctx context.Context, id string) (*entities.FinancialRecord, error) {
	record, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("financial record not found: " + id)
	}
	return &record, nil
}

// Update merges the patch into the stored record
func (a *FinancialAdapter) Update(ctx context.Context, id string, patch entities.FinancialRecordPatch) (*entities.FinancialRecord, error) {
	record, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a record
func (a *FinancialAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all records in insertion order
func (a *FinancialAdapter) List(ctx context.Context) ([]*entities.FinancialRecord, error) {
	return toPtrs(a.store.List(ctx)), nil
}

// ListByTreatmentID returns the treatment's records in insertion order
func (a *FinancialAdapter) ListByTreatmentID(ctx context.Context, treatmentID string) ([]*entities.FinancialRecord, error) {
	records := a.store.Filter(ctx, func(r entities.FinancialRecord) bool {
		return r.TreatmentID == treatmentID
	})
	return toPtrs(records), nil
}
