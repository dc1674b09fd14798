package collection

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// PatientAdapter implements the PatientRepository interface over a collection
// store
type PatientAdapter struct {
	store *Store[entities.Patient]
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(store *Store[entities.Patient]) repositories.PatientRepository {
	return &PatientAdapter{store: store}
}

// Create appends a new patient
func (a *PatientAdapter) Create(ctx context.Context, patient *entities.Patient) error {
	return a.store.Add(ctx, *patient)
}

// GetByID retrieves a patient by ID
func (a *PatientAdapter) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	patient, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("patient not found: " + id)
	}
	return &patient, nil
}

// Update merges the patch into the stored patient
func (a *PatientAdapter) Update(ctx context.Context, id string, patch entities.PatientPatch) (*entities.Patient, error) {
	patient, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Delete removes a patient
func (a *PatientAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all patients in insertion order
func (a *PatientAdapter) List(ctx context.Context) ([]*entities.Patient, error) {
	return toPtrs(a.store.List(ctx)), nil
}
