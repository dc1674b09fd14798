package repositories

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// PatientRepository defines data operations over patients
type PatientRepository interface {
	// Create appends a new patient to the collection
	Create(ctx context.Context, patient *entities.Patient) error

	// GetByID retrieves a patient by ID
	GetByID(ctx context.Context, id string) (*entities.Patient, error)

	// Update merges the patch into the stored patient
	Update(ctx context.Context, id string, patch entities.PatientPatch) (*entities.Patient, error)

	// Delete removes a patient
	Delete(ctx context.Context, id string) error

	// List returns all patients in insertion order
	List(ctx context.Context) ([]*entities.Patient, error)
}
