package repositories

import (
	"context"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// ProcedureTemplateRepository defines data operations over the procedure catalog
type ProcedureTemplateRepository interface {
	// Create appends a new template to the collection
	Create(ctx context.Context, template *entities.ProcedureTemplate) error

	// GetByID retrieves a template by ID
	GetByID(ctx context.Context, id string) (*entities.ProcedureTemplate, error)

	// Update merges the patch into the stored template
	Update(ctx context.Context, id string, patch entities.ProcedureTemplatePatch) (*entities.ProcedureTemplate, error)

	// Delete removes a template. The caller is responsible for cascading to
	// the template's stages.
	Delete(ctx context.Context, id string) error

	// List returns all templates in insertion order
	List(ctx context.Context) ([]*entities.ProcedureTemplate, error)
}

// ProcedureTemplateStageRepository defines data operations over template stages
type ProcedureTemplateStageRepository interface {
	// Create appends a new stage to the collection
	Create(ctx context.Context, stage *entities.ProcedureTemplateStage) error

	// GetByID retrieves a stage by ID
	GetByID(ctx context.Context, id string) (*entities.ProcedureTemplateStage, error)

	// Update merges the patch into the stored stage
	Update(ctx context.Context, id string, patch entities.ProcedureTemplateStagePatch) (*entities.ProcedureTemplateStage, error)

	// Delete removes a single stage
	Delete(ctx context.Context, id string) error

	// DeleteByTemplateID removes every stage owned by the template
	DeleteByTemplateID(ctx context.Context, templateID string) error

	// ListByTemplateID returns the template's stages sorted ascending by
	// order index
	ListByTemplateID(ctx context.Context, templateID string) ([]*entities.ProcedureTemplateStage, error)
}

// StageTemplateRepository defines data operations over reusable stage blueprints
type StageTemplateRepository interface {
	// Create appends a new stage template to the collection
	Create(ctx context.Context, template *entities.StageTemplate) error

	// GetByID retrieves a stage template by ID
	GetByID(ctx context.Context, id string) (*entities.StageTemplate, error)

	// Update merges the patch into the stored stage template
	Update(ctx context.Context, id string, patch entities.StageTemplatePatch) (*entities.StageTemplate, error)

	// Delete removes a stage template
	Delete(ctx context.Context, id string) error

	// List returns all stage templates in insertion order
	List(ctx context.Context) ([]*entities.StageTemplate, error)
}
