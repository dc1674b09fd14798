package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// PatientService handles the patient registry
type PatientService struct {
	repo          repositories.PatientRepository
	treatmentRepo repositories.TreatmentRepository
	now           func() time.Time
}

// NewPatientService creates a new patient service
func NewPatientService(repo repositories.PatientRepository, treatmentRepo repositories.TreatmentRepository) *PatientService {
	return &PatientService{
		repo:          repo,
		treatmentRepo: treatmentRepo,
		now:           time.Now,
	}
}

// CreatePatient registers a new patient. Name and CPF are required; ID and
// registration date are assigned here.
func (s *PatientService) CreatePatient(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	if patient.Name == "" {
		return nil, apperrors.NewValidationError("patient name is required")
	}
	if patient.CPF == "" {
		return nil, apperrors.NewValidationError("patient cpf is required")
	}
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if patient.CreatedAt == "" {
		patient.CreatedAt = s.now().Format(entities.DateLayout)
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(ctx context.Context, id string) (*entities.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdatePatient merges the patch into the stored patient
func (s *PatientService) UpdatePatient(ctx context.Context, id string, patch entities.PatientPatch) (*entities.Patient, error) {
	return s.repo.Update(ctx, id, patch)
}

// DeletePatient removes a patient. Deletion is refused while any treatment
// still references the patient.
func (s *PatientService) DeletePatient(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	treatments, err := s.treatmentRepo.ListByPatientID(ctx, id)
	if err != nil {
		return err
	}
	if len(treatments) > 0 {
		return apperrors.NewConflictError("patient has treatments and cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

// ListPatients returns all patients in registration order
func (s *PatientService) ListPatients(ctx context.Context) ([]*entities.Patient, error) {
	return s.repo.List(ctx)
}

// ListPatientTreatments returns the patient's treatments
func (s *PatientService) ListPatientTreatments(ctx context.Context, id string) ([]*entities.Treatment, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.treatmentRepo.ListByPatientID(ctx, id)
}
