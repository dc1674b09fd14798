package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/application/services"
	"github.com/dentaltrack/backend/internal/domain/entities"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

func newFinancialService(t *testing.T) *services.FinancialService {
	t.Helper()
	collections, _ := newSeededCollections(t)
	return services.NewFinancialService(collection.NewFinancialAdapter(collections.FinancialRecords))
}

func TestFinancialService_CreateRecord(t *testing.T) {
	ctx := context.Background()
	service := newFinancialService(t)

	t.Run("new records default to pending", func(t *testing.T) {
		created, err := service.CreateRecord(ctx, &entities.FinancialRecord{
			Type:        entities.RecordTypeExpense,
			Amount:      320,
			Date:        "2024-12-10",
			Description: "Material de moldagem",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, entities.PaymentStatusPending, created.Status)
	})

	t.Run("validates type, amount and date", func(t *testing.T) {
		_, err := service.CreateRecord(ctx, &entities.FinancialRecord{
			Type: "transfer", Amount: 100, Date: "2024-12-10"})
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

		_, err = service.CreateRecord(ctx, &entities.FinancialRecord{
			Type: entities.RecordTypeIncome, Amount: 0, Date: "2024-12-10"})
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

		_, err = service.CreateRecord(ctx, &entities.FinancialRecord{
			Type: entities.RecordTypeIncome, Amount: 100})
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}

func TestFinancialService_UpdateRecord(t *testing.T) {
	ctx := context.Background()
	service := newFinancialService(t)

	t.Run("settles a pending record", func(t *testing.T) {
		status := entities.PaymentStatusPaid
		date := "2024-12-15"

		updated, err := service.UpdateRecord(ctx, "1", entities.FinancialRecordPatch{
			Status:      &status,
			PaymentDate: &date,
		})

		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, updated.Status)
		assert.Equal(t, "2024-12-15", updated.PaymentDate)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		amount := -5.0

		_, err := service.UpdateRecord(ctx, "1", entities.FinancialRecordPatch{Amount: &amount})

		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}

func TestFinancialService_ListByTreatment(t *testing.T) {
	ctx := context.Background()
	service := newFinancialService(t)

	records, err := service.ListByTreatment(ctx, "1")

	require.NoError(t, err)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, "1", r.TreatmentID)
	}
}
