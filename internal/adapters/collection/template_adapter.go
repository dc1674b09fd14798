package collection

import (
	"cmp"
	"context"
	"slices"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// ProcedureTemplateAdapter implements the ProcedureTemplateRepository
// interface over a collection store
type ProcedureTemplateAdapter struct {
	store *Store[entities.ProcedureTemplate]
}

// NewProcedureTemplateAdapter creates a new procedure template adapter
func NewProcedureTemplateAdapter(store *Store[entities.ProcedureTemplate]) repositories.ProcedureTemplateRepository {
	return &ProcedureTemplateAdapter{store: store}
}

// Create appends a new template
func (a *ProcedureTemplateAdapter) Create(ctx context.Context, template *entities.ProcedureTemplate) error {
	return a.store.Add(ctx, *template)
}

// GetByID retrieves a template by ID
func (a *ProcedureTemplateAdapter) GetByID(ctx context.Context, id string) (*entities.ProcedureTemplate, error) {
	template, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("procedure template not found: " + id)
	}
	return &template, nil
}

// Update merges the patch into the stored template
func (a *ProcedureTemplateAdapter) Update(ctx context.Context, id string, patch entities.ProcedureTemplatePatch) (*entities.ProcedureTemplate, error) {
	template, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// Delete removes a template
func (a *ProcedureTemplateAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all templates in insertion order
func (a *ProcedureTemplateAdapter) List(ctx context.Context) ([]*entities.ProcedureTemplate, error) {
	return toPtrs(a.store.List(ctx)), nil
}

// ProcedureTemplateStageAdapter implements the
// ProcedureTemplateStageRepository interface over a collection store
type ProcedureTemplateStageAdapter struct {
	store *Store[entities.ProcedureTemplateStage]
}

// NewProcedureTemplateStageAdapter creates a new template stage adapter
func NewProcedureTemplateStageAdapter(store *Store[entities.ProcedureTemplateStage]) repositories.ProcedureTemplateStageRepository {
	return &ProcedureTemplateStageAdapter{store: store}
}

// Create appends a new stage
func (a *ProcedureTemplateStageAdapter) Create(ctx context.Context, stage *entities.ProcedureTemplateStage) error {
	return a.store.Add(ctx, *stage)
}

// GetByID retrieves a stage by ID
func (a *ProcedureTemplateStageAdapter) GetByID(ctx context.Context, id string) (*entities.ProcedureTemplateStage, error) {
	stage, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("template stage not found: " + id)
	}
	return &stage, nil
}

// Update merges the patch into the stored stage
func (a *ProcedureTemplateStageAdapter) Update(ctx context.Context, id string, patch entities.ProcedureTemplateStagePatch) (*entities.ProcedureTemplateStage, error) {
	stage, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// Delete removes a single stage and renumbers the surviving siblings so
// their order indexes stay dense and 1-based
func (a *ProcedureTemplateStageAdapter) Delete(ctx context.Context, id string) error {
	stage, ok := a.store.Get(ctx, id)
	if !ok {
		return apperrors.NewNotFoundError("template stage not found: " + id)
	}
	removed, err := a.store.DeleteWhere(ctx,
		func(s entities.ProcedureTemplateStage) bool { return s.ID == id },
		func(survivors []entities.ProcedureTemplateStage) []entities.ProcedureTemplateStage {
			return renumberTemplateStages(survivors, stage.TemplateID)
		})
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperrors.NewNotFoundError("template stage not found: " + id)
	}
	return nil
}

// DeleteByTemplateID removes every stage owned by the template
func (a *ProcedureTemplateStageAdapter) DeleteByTemplateID(ctx context.Context, templateID string) error {
	_, err := a.store.DeleteWhere(ctx,
		func(s entities.ProcedureTemplateStage) bool { return s.TemplateID == templateID },
		nil)
	return err
}

// ListByTemplateID returns the template's stages sorted ascending by order
// index
func (a *ProcedureTemplateStageAdapter) ListByTemplateID(ctx context.Context, templateID string) ([]*entities.ProcedureTemplateStage, error) {
	stages := a.store.Filter(ctx, func(s entities.ProcedureTemplateStage) bool {
		return s.TemplateID == templateID
	})
	slices.SortStableFunc(stages, func(a, b entities.ProcedureTemplateStage) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
	return toPtrs(stages), nil
}

// renumberTemplateStages reassigns 1..n order indexes to the template's
// surviving stages, walked in ascending order of their current index
func renumberTemplateStages(stages []entities.ProcedureTemplateStage, templateID string) []entities.ProcedureTemplateStage {
	var siblings []int
	for i, s := range stages {
		if s.TemplateID == templateID {
			siblings = append(siblings, i)
		}
	}
	slices.SortStableFunc(siblings, func(a, b int) int {
		return cmp.Compare(stages[a].OrderIndex, stages[b].OrderIndex)
	})
	for order, i := range siblings {
		stages[i].OrderIndex = order + 1
	}
	return stages
}

// StageTemplateAdapter implements the StageTemplateRepository interface over
// a collection store
type StageTemplateAdapter struct {
	store *Store[entities.StageTemplate]
}

// NewStageTemplateAdapter creates a new stage template adapter
func NewStageTemplateAdapter(store *Store[entities.StageTemplate]) repositories.StageTemplateRepository {
	return &StageTemplateAdapter{store: store}
}

// Create appends a new stage template
func (a *StageTemplateAdapter) Create(ctx context.Context, template *entities.StageTemplate) error {
	return a.store.Add(ctx, *template)
}

// GetByID retrieves a stage template by ID
func (a *StageTemplateAdapter) GetByID(ctx context.Context, id string) (*entities.StageTemplate, error) {
	template, ok := a.store.Get(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("stage template not found: " + id)
	}
	return &template, nil
}

// Update merges the patch into the stored stage template
func (a *StageTemplateAdapter) Update(ctx context.Context, id string, patch entities.StageTemplatePatch) (*entities.StageTemplate, error) {
	template, err := a.store.Update(ctx, id, patch.Apply)
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// Delete removes a stage template
func (a *StageTemplateAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

// List returns all stage templates in insertion order
func (a *StageTemplateAdapter) List(ctx context.Context) ([]*entities.StageTemplate, error) {
	return toPtrs(a.store.List(ctx)), nil
}
