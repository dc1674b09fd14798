package repositories

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// TreatmentRepository defines data operations over treatments
type TreatmentRepository interface {
	// Create appends a new treatment to the collection
	Create(ctx context.Context, treatment *entities.Treatment) error

	// GetByID retrieves a treatment by ID
	GetByID(ctx context.Context, id string) (*entities.Treatment, error)

	// Update merges the patch into the stored treatment
	Update(ctx context.Context, id string, patch entities.TreatmentPatch) (*entities.Treatment, error)

	// Delete removes a treatment. The caller is responsible for cascading to
	// the treatment's stages.
	Delete(ctx context.Context, id string) error

	// List returns all treatments in insertion order
	List(ctx context.Context) ([]*entities.Treatment, error)

	// ListByPatientID returns the patient's treatments in insertion order
	ListByPatientID(ctx context.Context, patientID string) ([]*entities.Treatment, error)
}

// TreatmentStageRepository defines data operations over treatment stages
type TreatmentStageRepository interface {
	// Create appends a new stage to the collection
	Create(ctx context.Context, stage *entities.TreatmentStage) error

	// GetByID retrieves a stage by ID
	GetByID(ctx context.Context, id string) (*entities.TreatmentStage, error)

	// Update merges the patch into the stored stage; today is the calendar
	// date used to stamp completions
	Update(ctx context.Context, id string, patch entities.TreatmentStagePatch, today string) (*entities.TreatmentStage, error)

	// Replace overwrites the stored stage wholesale; used by the attachment
	// and checklist mutations which are computed on the entity
	Replace(ctx context.Context, stage *entities.TreatmentStage) error

	// Delete removes a single stage
	Delete(ctx context.Context, id string) error

	// DeleteByTreatmentID removes every stage owned by the treatment
	DeleteByTreatmentID(ctx context.Context, treatmentID string) error

	// ListByTreatmentID returns the treatment's stages sorted ascending by
	// order index
	ListByTreatmentID(ctx context.Context, treatmentID string) ([]*entities.TreatmentStage, error)
}
