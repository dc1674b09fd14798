package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// TemplateService handles the procedure catalog: templates, their ordered
// stage plans and the reusable stage blueprints.
type TemplateService struct {
	repo          repositories.ProcedureTemplateRepository
	stageRepo     repositories.ProcedureTemplateStageRepository
	blueprintRepo repositories.StageTemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(
	repo repositories.ProcedureTemplateRepository,
	stageRepo repositories.ProcedureTemplateStageRepository,
	blueprintRepo repositories.StageTemplateRepository,
) *TemplateService {
	return &TemplateService{
		repo:          repo,
		stageRepo:     stageRepo,
		blueprintRepo: blueprintRepo,
	}
}

// CreateTemplate adds a procedure to the catalog
func (s *TemplateService) CreateTemplate(ctx context.Context, template *entities.ProcedureTemplate) (*entities.ProcedureTemplate, error) {
	if template.Name == "" {
		return nil, apperrors.NewValidationError("template name is required")
	}
	if template.BaseCost < 0 {
		return nil, apperrors.NewValidationError("base cost cannot be negative")
	}
	if template.ID == "" {
		template.ID = uuid.New().String()
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id string) (*entities.ProcedureTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateTemplate merges the patch into the stored template
func (s *TemplateService) UpdateTemplate(ctx context.Context, id string, patch entities.ProcedureTemplatePatch) (*entities.ProcedureTemplate, error) {
	if patch.BaseCost != nil && *patch.BaseCost < 0 {
		return nil, apperrors.NewValidationError("base cost cannot be negative")
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteTemplate removes a template and cascades to its stage plan
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.stageRepo.DeleteByTemplateID(ctx, id)
}

// ListTemplates returns the catalog in insertion order
func (s *TemplateService) ListTemplates(ctx context.Context) ([]*entities.ProcedureTemplate, error) {
	return s.repo.List(ctx)
}

// ListTemplateStages returns the template's stage plan ordered by index
func (s *TemplateService) ListTemplateStages(ctx context.Context, templateID string) ([]*entities.ProcedureTemplateStage, error) {
	if _, err := s.repo.GetByID(ctx, templateID); err != nil {
		return nil, err
	}
	return s.stageRepo.ListByTemplateID(ctx, templateID)
}

// AddStage appends a stage to the end of the template's plan. The order
// index is assigned here, one past the current stage count.
func (s *TemplateService) AddStage(ctx context.Context, templateID string, stage *entities.ProcedureTemplateStage) (*entities.ProcedureTemplateStage, error) {
	if stage.Name == "" {
		return nil, apperrors.NewValidationError("stage name is required")
	}
	existing, err := s.ListTemplateStages(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if stage.ID == "" {
		stage.ID = uuid.New().String()
	}
	stage.TemplateID = templateID
	stage.OrderIndex = len(existing) + 1
	if err := s.stageRepo.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

// AddStageFromBlueprint appends a stage built from a reusable blueprint:
// name, description and checklist come from the blueprint, position is the
// end of the plan.
func (s *TemplateService) AddStageFromBlueprint(ctx context.Context, templateID, blueprintID string) (*entities.ProcedureTemplateStage, error) {
	blueprint, err := s.blueprintRepo.GetByID(ctx, blueprintID)
	if err != nil {
		return nil, err
	}
	stage := &entities.ProcedureTemplateStage{
		Name:           blueprint.Name,
		Description:    blueprint.Description,
		ChecklistItems: append([]string(nil), blueprint.ChecklistItems...),
	}
	return s.AddStage(ctx, templateID, stage)
}

// UpdateStage merges the patch into the stored stage
func (s *TemplateService) UpdateStage(ctx context.Context, id string, patch entities.ProcedureTemplateStagePatch) (*entities.ProcedureTemplateStage, error) {
	return s.stageRepo.Update(ctx, id, patch)
}

// RemoveStage deletes a stage; the repository renumbers the survivors so
// the plan stays dense and 1-based
func (s *TemplateService) RemoveStage(ctx context.Context, id string) error {
	return s.stageRepo.Delete(ctx, id)
}

// SwapStageOrder exchanges the order indexes of exactly two stages of the
// same template. Everything else about the plan is left untouched.
func (s *TemplateService) SwapStageOrder(ctx context.Context, firstID, secondID string) error {
	if firstID == secondID {
		return apperrors.NewValidationError("cannot swap a stage with itself")
	}
	first, err := s.stageRepo.GetByID(ctx, firstID)
	if err != nil {
		return err
	}
	second, err := s.stageRepo.GetByID(ctx, secondID)
	if err != nil {
		return err
	}
	if first.TemplateID != second.TemplateID {
		return apperrors.NewValidationError("stages belong to different templates")
	}

	if _, err := s.stageRepo.Update(ctx, firstID, entities.ProcedureTemplateStagePatch{OrderIndex: &second.OrderIndex}); err != nil {
		return err
	}
	if _, err := s.stageRepo.Update(ctx, secondID, entities.ProcedureTemplateStagePatch{OrderIndex: &first.OrderIndex}); err != nil {
		// put the first stage back so a failed swap does not leave
		// two stages sharing an index
		_, revertErr := s.stageRepo.Update(ctx, firstID, entities.ProcedureTemplateStagePatch{OrderIndex: &first.OrderIndex})
		if revertErr != nil {
			return revertErr
		}
		return err
	}
	return nil
}

// CreateBlueprint adds a reusable stage blueprint
func (s *TemplateService) CreateBlueprint(ctx context.Context, blueprint *entities.StageTemplate) (*entities.StageTemplate, error) {
	if blueprint.Name == "" {
		return nil, apperrors.NewValidationError("stage template name is required")
	}
	if blueprint.ID == "" {
		blueprint.ID = uuid.New().String()
	}
	if err := s.blueprintRepo.Create(ctx, blueprint); err != nil {
		return nil, err
	}
	return blueprint, nil
}

// GetBlueprint retrieves a stage blueprint by ID
func (s *TemplateService) GetBlueprint(ctx context.Context, id string) (*entities.StageTemplate, error) {
	return s.blueprintRepo.GetByID(ctx, id)
}

// UpdateBlueprint merges the patch into the stored blueprint
func (s *TemplateService) UpdateBlueprint(ctx context.Context, id string, patch entities.StageTemplatePatch) (*entities.StageTemplate, error) {
	return s.blueprintRepo.Update(ctx, id, patch)
}

// DeleteBlueprint removes a stage blueprint. Stages already created from it
// are untouched.
func (s *TemplateService) DeleteBlueprint(ctx context.Context, id string) error {
	return s.blueprintRepo.Delete(ctx, id)
}

// ListBlueprints returns all stage blueprints in insertion order
func (s *TemplateService) ListBlueprints(ctx context.Context) ([]*entities.StageTemplate, error) {
	return s.blueprintRepo.List(ctx)
}
