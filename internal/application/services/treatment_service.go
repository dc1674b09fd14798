package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// CreateTreatmentInput carries everything needed to start a treatment from a
// procedure template. StageDates optionally schedules individual stages,
// keyed by template stage ID. WithFinancialRecord creates the initial income
// entry for the treatment's cost.
type CreateTreatmentInput struct {
	PatientID           string            `json:"patientId"`
	TemplateID          string            `json:"templateId"`
	DentistID           string            `json:"dentistId"`
	StartDate           string            `json:"startDate"`
	TotalCost           float64           `json:"totalCost"`
	Notes               string            `json:"notes,omitempty"`
	StageDates          map[string]string `json:"stageDates,omitempty"`
	WithFinancialRecord bool              `json:"withFinancialRecord"`
}

// TreatmentDetail bundles a treatment with its ordered stages and derived
// progress
type TreatmentDetail struct {
	Treatment *entities.Treatment        `json:"treatment"`
	Stages    []*entities.TreatmentStage `json:"stages"`
	Progress  entities.TreatmentProgress `json:"progress"`
}

// TreatmentService handles treatment execution: instantiation from the
// catalog, stage mutations and derived progress.
type TreatmentService struct {
	repo          repositories.TreatmentRepository
	stageRepo     repositories.TreatmentStageRepository
	patientRepo   repositories.PatientRepository
	userRepo      repositories.UserRepository
	templateRepo  repositories.ProcedureTemplateRepository
	templateStage repositories.ProcedureTemplateStageRepository
	financialRepo repositories.FinancialRepository
	logger        zerolog.Logger
	now           func() time.Time
}

// NewTreatmentService creates a new treatment service
func NewTreatmentService(
	repo repositories.TreatmentRepository,
	stageRepo repositories.TreatmentStageRepository,
	patientRepo repositories.PatientRepository,
	userRepo repositories.UserRepository,
	templateRepo repositories.ProcedureTemplateRepository,
	templateStage repositories.ProcedureTemplateStageRepository,
	financialRepo repositories.FinancialRepository,
	logger zerolog.Logger,
) *TreatmentService {
	return &TreatmentService{
		repo:          repo,
		stageRepo:     stageRepo,
		patientRepo:   patientRepo,
		userRepo:      userRepo,
		templateRepo:  templateRepo,
		templateStage: templateStage,
		financialRepo: financialRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *TreatmentService) today() string {
	return s.now().Format(entities.DateLayout)
}

// CreateTreatment instantiates a treatment from a procedure template: the
// treatment itself, one stage per template stage in plan order (the first
// in_progress, the rest pending) and optionally the initial income record.
// The whole set commits together; on a store error everything created so far
// is removed again.
func (s *TreatmentService) CreateTreatment(ctx context.Context, input CreateTreatmentInput) (*TreatmentDetail, error) {
	if input.PatientID == "" || input.TemplateID == "" || input.DentistID == "" {
		return nil, apperrors.NewValidationError("patientId, templateId and dentistId are required")
	}
	if input.TotalCost < 0 {
		return nil, apperrors.NewValidationError("total cost cannot be negative")
	}
	if _, err := s.patientRepo.GetByID(ctx, input.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, input.DentistID); err != nil {
		return nil, err
	}
	template, err := s.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	plan, err := s.templateStage.ListByTemplateID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}

	startDate := input.StartDate
	if startDate == "" {
		startDate = s.today()
	}
	totalCost := input.TotalCost
	if totalCost == 0 {
		totalCost = template.BaseCost
	}

	treatment := &entities.Treatment{
		ID:         uuid.New().String(),
		PatientID:  input.PatientID,
		TemplateID: input.TemplateID,
		StartDate:  startDate,
		Status:     entities.TreatmentStatusScheduled,
		DentistID:  input.DentistID,
		TotalCost:  totalCost,
		Notes:      input.Notes,
	}
	if err := s.repo.Create(ctx, treatment); err != nil {
		return nil, err
	}

	stages := make([]*entities.TreatmentStage, 0, len(plan))
	for i, planned := range plan {
		status := entities.StageStatusPending
		if i == 0 {
			status = entities.StageStatusInProgress
		}
		scheduled := input.StageDates[planned.ID]
		if scheduled == "" && i == 0 {
			scheduled = startDate
		}
		stage := &entities.TreatmentStage{
			ID:             uuid.New().String(),
			TreatmentID:    treatment.ID,
			Name:           planned.Name,
			Status:         status,
			OrderIndex:     planned.OrderIndex,
			ScheduledDate:  scheduled,
			ChecklistItems: append([]string(nil), planned.ChecklistItems...),
		}
		if err := s.stageRepo.Create(ctx, stage); err != nil {
			s.rollbackCreate(ctx, treatment.ID)
			return nil, err
		}
		stages = append(stages, stage)
	}

	if input.WithFinancialRecord {
		record := &entities.FinancialRecord{
			ID:              uuid.New().String(),
			TreatmentID:     treatment.ID,
			Type:            entities.RecordTypeIncome,
			Amount:          totalCost,
			Date:            startDate,
			Description:     template.Name,
			Category:        template.Category,
			Status:          entities.PaymentStatusPending,
			ResponsibleType: entities.ResponsiblePatient,
			PatientID:       input.PatientID,
			CreatedBy:       input.DentistID,
		}
		if err := s.financialRepo.Create(ctx, record); err != nil {
			s.rollbackCreate(ctx, treatment.ID)
			return nil, err
		}
	}

	return &TreatmentDetail{
		Treatment: treatment,
		Stages:    stages,
		Progress:  entities.ComputeProgress(stages),
	}, nil
}

// rollbackCreate undoes a partially created treatment. Rollback failures are
// logged and swallowed; the caller already has the original error to return.
func (s *TreatmentService) rollbackCreate(ctx context.Context, treatmentID string) {
	if err := s.stageRepo.DeleteByTreatmentID(ctx, treatmentID); err != nil {
		s.logger.Error().Err(err).Str("treatment_id", treatmentID).Msg("rollback: failed to remove stages")
	}
	if err := s.repo.Delete(ctx, treatmentID); err != nil {
		s.logger.Error().Err(err).Str("treatment_id", treatmentID).Msg("rollback: failed to remove treatment")
	}
}

// GetTreatment returns a treatment with its ordered stages and progress
func (s *TreatmentService) GetTreatment(ctx context.Context, id string) (*TreatmentDetail, error) {
	treatment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stages, err := s.stageRepo.ListByTreatmentID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TreatmentDetail{
		Treatment: treatment,
		Stages:    stages,
		Progress:  entities.ComputeProgress(stages),
	}, nil
}

// UpdateTreatment merges the patch into the stored treatment
func (s *TreatmentService) UpdateTreatment(ctx context.Context, id string, patch entities.TreatmentPatch) (*entities.Treatment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid treatment status: " + string(*patch.Status))
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteTreatment removes a treatment and cascades to its stages
func (s *TreatmentService) DeleteTreatment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.stageRepo.DeleteByTreatmentID(ctx, id)
}

// ListTreatments returns all treatments in insertion order
func (s *TreatmentService) ListTreatments(ctx context.Context) ([]*entities.Treatment, error) {
	return s.repo.List(ctx)
}

// ListStages returns the treatment's stages ordered by index
func (s *TreatmentService) ListStages(ctx context.Context, treatmentID string) ([]*entities.TreatmentStage, error) {
	if _, err := s.repo.GetByID(ctx, treatmentID); err != nil {
		return nil, err
	}
	return s.stageRepo.ListByTreatmentID(ctx, treatmentID)
}

// Progress computes the treatment's derived progress from its current stages
func (s *TreatmentService) Progress(ctx context.Context, treatmentID string) (entities.TreatmentProgress, error) {
	stages, err := s.ListStages(ctx, treatmentID)
	if err != nil {
		return entities.TreatmentProgress{}, err
	}
	return entities.ComputeProgress(stages), nil
}

// UpdateStage merges the patch into a treatment stage. Completions are
// stamped with today's calendar date when no completion date is present.
func (s *TreatmentService) UpdateStage(ctx context.Context, stageID string, patch entities.TreatmentStagePatch) (*entities.TreatmentStage, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid stage status: " + string(*patch.Status))
	}
	return s.stageRepo.Update(ctx, stageID, patch, s.today())
}

// AddAttachment appends a filename to the stage's attachment list. Only the
// name is kept, there is no file content to store.
func (s *TreatmentService) AddAttachment(ctx context.Context, stageID, filename string) (*entities.TreatmentStage, error) {
	if filename == "" {
		return nil, apperrors.NewValidationError("attachment filename is required")
	}
	stage, err := s.stageRepo.GetByID(ctx, stageID)
	if err != nil {
		return nil, err
	}
	updated := stage.AddAttachment(filename)
	if err := s.stageRepo.Replace(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleChecklistItem flips the completion state of one checklist item on a
// stage. Items outside the stage's checklist are ignored.
func (s *TreatmentService) ToggleChecklistItem(ctx context.Context, stageID, item string) (*entities.TreatmentStage, error) {
	if item == "" {
		return nil, apperrors.NewValidationError("checklist item is required")
	}
	stage, err := s.stageRepo.GetByID(ctx, stageID)
	if err != nil {
		return nil, err
	}
	updated := stage.ToggleChecklistItem(item)
	if err := s.stageRepo.Replace(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
