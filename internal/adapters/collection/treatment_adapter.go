package collection

import (
	"cmp"
	"context"
	"slices"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// TreatmentAdapter implements the TreatmentRepository interface over a
// collection store
type TreatmentAdapter struct {
	store *Store[entities.Treatment]
}

// NewTreatmentAdapter creates a new treatment adapter
func NewTreatmentAdapter(store *Store[entities.Treatment]) repositories.TreatmentRepository {
	return &TreatmentAdapter{store: store}
}

// Create appends a new treatment
func (a *TreatmentAdapter) Create(ctx context.Context, treatment *entities.Treatment) error {
	return a.store.Add(ctx, *treatment)
}

// GetByID retrieves a treatment by ID
func (a *TreatmentAdapter) GetByID(ctx context.Context, id string) (*entities.Treatment, error) {
	treatment, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("treatment not found: " + id)
	}
	return &treatment, nil
}

// Update merges the patch into the stored treatment
func (a *TreatmentAdapter) Update(ctx context.Context, id string, patch entities.TreatmentPatch) (*entities.Treatment, error) {
	treatment, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &treatment, nil
}

// Delete removes a treatment
func (a *TreatmentAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all treatments in insertion order
func (a *TreatmentAdapter) List(ctx context.Context) ([]*entities.Treatment, error) {
	return toPtrs(a.store.List(ctx)), nil
}

// ListByPatientID returns the patient's treatments in insertion order
func (a *TreatmentAdapter) ListByPatientID(ctx context.Context, patientID string) ([]*entities.Treatment, error) {
	treatments := a.store.Filter(ctx, func(t entities.Treatment) bool {
		return t.PatientID == patientID
	})
	return toPtrs(treatments), nil
}

// TreatmentStageAdapter implements the TreatmentStageRepository interface
// over a collection store
type TreatmentStageAdapter struct {
	store *Store[entities.TreatmentStage]
}

// NewTreatmentStageAdapter creates a new treatment stage adapter
func NewTreatmentStageAdapter(store *Store[entities.TreatmentStage]) repositories.TreatmentStageRepository {
	return &TreatmentStageAdapter{store: store}
}

// Create appends a new stage
func (a *TreatmentStageAdapter) Create(ctx context.Context, stage *entities.TreatmentStage) error {
	return a.store.Add(ctx, *stage)
}

// GetByID retrieves a stage by ID
func (a *TreatmentStageAdapter) GetByID(ctx context.Context, id string) (*entities.TreatmentStage, error) {
	stage, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("treatment stage not found: " + id)
	}
	return &stage, nil
}

// Update merges the patch into the stored stage; today is used to stamp
// completions
func (a *TreatmentStageAdapter) Update(ctx context.Context, id string, patch entities.TreatmentStagePatch, today string) (*entities.TreatmentStage, error) {
	stage, err := a.store.Update(ctx, id, func(s entities.TreatmentStage) entities.TreatmentStage {
		return patch.Apply(s, today)
	})
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// Replace overwrites the stored stage wholesale
func (a *TreatmentStageAdapter) Replace(ctx context.Context, stage *entities.TreatmentStage) error {
	return a.store.Replace(ctx, *stage)
}

// Delete removes a single stage
func (a *TreatmentStageAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// DeleteByTreatmentID removes every stage owned by the treatment
func (a *TreatmentStageAdapter) DeleteByTreatmentID(ctx context.Context, treatmentID string) error {
	_, err := a.store.DeleteWhere(ctx,
		func(s entities.TreatmentStage) bool { return s.TreatmentID == treatmentID },
		nil)
	return err
}

// ListByTreatmentID returns the treatment's stages sorted ascending by order
// index
func (a *TreatmentStageAdapter) ListByTreatmentID(ctx context.Context, treatmentID string) ([]*entities.TreatmentStage, error) {
	stages := a.store.Filter(ctx, func(s entities.TreatmentStage) bool {
		return s.TreatmentID == treatmentID
	})
	slices.SortStableFunc(stages, func(a, b entities.TreatmentStage) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
	return toPtrs(stages), nil
}
