package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

// FinancialService handles the clinic ledger
type FinancialService struct {
	repo repositories.FinancialRepository
}

// NewFinancialService creates a new financial service
func NewFinancialService(repo repositories.FinancialRepository) *FinancialService {
	return &FinancialService{repo: repo}
}

// CreateRecord appends a ledger entry. New records default to pending.
func (s *FinancialService) CreateRecord(ctx context.Context, record *entities.FinancialRecord) (*entities.FinancialRecord, error) {
	if !record.Type.Valid() {
		return nil, apperrors.NewValidationError("invalid record type: " + string(record.Type))
	}
	if record.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if record.Date == "" {
		return nil, apperrors.NewValidationError("date is required")
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Status == "" {
		record.Status = entities.PaymentStatusPending
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecord retrieves a ledger entry by ID
func (s *FinancialService) GetRecord(ctx context.Context, id string) (*entities.FinancialRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateRecord merges the patch into the stored entry
func (s *FinancialService) UpdateRecord(ctx context.Context, id string, patch entities.FinancialRecordPatch) (*entities.FinancialRecord, error) {
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	return s.repo.Update(ctx, id, patch)
}

// DeleteRecord removes a ledger entry
func (s *FinancialService) DeleteRecord(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListRecords returns the full ledger in insertion order
func (s *FinancialService) ListRecords(ctx context.Context) ([]*entities.FinancialRecord, error) {
	return s.repo.List(ctx)
}

// ListByTreatment returns the treatment's ledger entries in insertion order
func (s *FinancialService) ListByTreatment(ctx context.Context, treatmentID string) ([]*entities.FinancialRecord, error) {
	return s.repo.ListByTreatmentID(ctx, treatmentID)
}
