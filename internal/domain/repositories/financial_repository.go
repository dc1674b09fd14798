package repositories

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// FinancialRepository defines data operations over financial records
type FinancialRepository interface {
	// Create appends a new record to the collection
	Create(ctx context.Context, record *entities.FinancialRecord) error

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (*entities.FinancialRecord, error)

	// Update merges the patch into the stored record
	Update(ctx context.Context, id string, patch entities.FinancialRecordPatch) (*entities.FinancialRecord, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error

	// List returns all records in insertion order
	List(ctx context.Context) ([]*entities.FinancialRecord, error)

	// ListByTreatmentID returns the treatment's records in insertion order
	ListByTreatmentID(ctx context.Context, treatmentID string) ([]*entities.FinancialRecord, error)
}
