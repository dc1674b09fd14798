package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/application/services"
	"github.com/dentaltrack/backend/internal/domain/entities"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

func newTreatmentService(t *testing.T) (*services.TreatmentService, *collection.Collections, *memSlot) {
	t.Helper()
	collections, slot := newSeededCollections(t)
	service := services.NewTreatmentService(
		collection.NewTreatmentAdapter(collections.Treatments),
		collection.NewTreatmentStageAdapter(collections.TreatmentStages),
		collection.NewPatientAdapter(collections.Patients),
		collection.NewUserAdapter(collections.Users),
		collection.NewProcedureTemplateAdapter(collections.ProcedureTemplates),
		collection.NewProcedureTemplateStageAdapter(collections.ProcedureTemplateStages),
		collection.NewFinancialAdapter(collections.FinancialRecords),
		zerolog.Nop(),
	)
	return service, collections, slot
}

func TestTreatmentService_CreateTreatment(t *testing.T) {
	ctx := context.Background()

	t.Run("instantiates the full stage plan from the template", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		// template 2 is the four-stage root canal plan
		detail, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
			StartDate:  "2024-11-20",
		})

		require.NoError(t, err)
		assert.Equal(t, entities.TreatmentStatusScheduled, detail.Treatment.Status)
		assert.Equal(t, "2024-11-20", detail.Treatment.StartDate)
		assert.Equal(t, 800.0, detail.Treatment.TotalCost, "zero cost falls back to the template base cost")

		require.Len(t, detail.Stages, 4)
		first := detail.Stages[0]
		assert.Equal(t, "Diagnóstico e Anestesia", first.Name)
		assert.Equal(t, entities.StageStatusInProgress, first.Status)
		assert.Equal(t, 1, first.OrderIndex)
		assert.Equal(t, "2024-11-20", first.ScheduledDate, "first stage defaults to the start date")
		assert.Equal(t, []string{"Teste de vitalidade", "Raio-X periapical", "Anestesia"}, first.ChecklistItems)
		for _, stage := range detail.Stages[1:] {
			assert.Equal(t, entities.StageStatusPending, stage.Status)
			assert.Empty(t, stage.ScheduledDate)
		}

		assert.Equal(t, 4, detail.Progress.Total)
		assert.Equal(t, 1, detail.Progress.InProgress)
		assert.Equal(t, 0, detail.Progress.Percentage)
	})

	t.Run("per-stage dates override the default schedule", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		detail, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
			StartDate:  "2024-11-20",
			StageDates: map[string]string{"9": "2024-11-21", "10": "2024-11-28"},
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-11-21", detail.Stages[0].ScheduledDate)
		assert.Equal(t, "2024-11-28", detail.Stages[1].ScheduledDate)
		assert.Empty(t, detail.Stages[2].ScheduledDate)
	})

	t.Run("missing start date defaults to today", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)
		today := time.Now().Format(entities.DateLayout)

		detail, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
		})

		require.NoError(t, err)
		assert.Equal(t, today, detail.Treatment.StartDate)
	})

	t.Run("optionally books the initial income record", func(t *testing.T) {
		service, collections, _ := newTreatmentService(t)

		detail, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:           "1",
			TemplateID:          "2",
			DentistID:           "3",
			StartDate:           "2024-11-20",
			WithFinancialRecord: true,
		})

		require.NoError(t, err)
		records, err := collection.NewFinancialAdapter(collections.FinancialRecords).
			ListByTreatmentID(ctx, detail.Treatment.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, entities.RecordTypeIncome, records[0].Type)
		assert.Equal(t, 800.0, records[0].Amount)
		assert.Equal(t, "2024-11-20", records[0].Date)
		assert.Equal(t, "Tratamento de Canal", records[0].Description)
		assert.Equal(t, entities.PaymentStatusPending, records[0].Status)
	})

	t.Run("rejects missing references before writing anything", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		_, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "ghost",
			TemplateID: "2",
			DentistID:  "3",
		})

		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))

		treatments, listErr := service.ListTreatments(ctx)
		require.NoError(t, listErr)
		assert.Len(t, treatments, 6)
	})

	t.Run("validates required fields and cost", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		_, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{PatientID: "1"})
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

		_, err = service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
			TotalCost:  -100,
		})
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})

	t.Run("rolls the treatment back when stage creation fails", func(t *testing.T) {
		service, _, slot := newTreatmentService(t)
		slot.failWritesTo(collection.KeyTreatmentStages, errors.New("disk full"))

		_, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
		})

		require.Error(t, err)
		treatments, listErr := service.ListTreatments(ctx)
		require.NoError(t, listErr)
		assert.Len(t, treatments, 6, "the partially created treatment is removed again")
	})
}

func TestTreatmentService_DeleteTreatment(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTreatmentService(t)

	require.NoError(t, service.DeleteTreatment(ctx, "1"))

	_, err := service.GetTreatment(ctx, "1")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))

	_, err = service.ListStages(ctx, "1")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestTreatmentService_UpdateStage(t *testing.T) {
	ctx := context.Background()

	t.Run("completion stamps today's date", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)
		today := time.Now().Format(entities.DateLayout)
		status := entities.StageStatusCompleted

		// s5 is the in-progress stage of the seeded implant treatment
		stage, err := service.UpdateStage(ctx, "s5", entities.TreatmentStagePatch{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, entities.StageStatusCompleted, stage.Status)
		assert.Equal(t, today, stage.DateCompleted)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)
		status := entities.StageStatus("done")

		_, err := service.UpdateStage(ctx, "s5", entities.TreatmentStagePatch{Status: &status})

		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}

func TestTreatmentService_Progress(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTreatmentService(t)

	// the seeded implant treatment: four stages done, osseointegration under
	// way, three still pending
	progress, err := service.Progress(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, 8, progress.Total)
	assert.Equal(t, 4, progress.Completed)
	assert.Equal(t, 1, progress.InProgress)
	assert.Equal(t, 50, progress.Percentage)
}

func TestTreatmentService_StageExtras(t *testing.T) {
	ctx := context.Background()

	t.Run("attachments accumulate on the stage", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		stage, err := service.AddAttachment(ctx, "s5", "raio_x_controle.pdf")

		require.NoError(t, err)
		assert.Contains(t, stage.Attachments, "raio_x_controle.pdf")

		reloaded, err := service.ListStages(ctx, "1")
		require.NoError(t, err)
		for _, s := range reloaded {
			if s.ID == "s5" {
				assert.Contains(t, s.Attachments, "raio_x_controle.pdf")
			}
		}
	})

	t.Run("checklist toggles persist", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)
		detail, err := service.CreateTreatment(ctx, services.CreateTreatmentInput{
			PatientID:  "1",
			TemplateID: "2",
			DentistID:  "3",
		})
		require.NoError(t, err)
		stageID := detail.Stages[0].ID

		stage, err := service.ToggleChecklistItem(ctx, stageID, "Anestesia")
		require.NoError(t, err)
		assert.Equal(t, []string{"Anestesia"}, stage.CompletedChecklist)

		stage, err = service.ToggleChecklistItem(ctx, stageID, "Anestesia")
		require.NoError(t, err)
		assert.Empty(t, stage.CompletedChecklist)
	})

	t.Run("empty attachment and checklist arguments are rejected", func(t *testing.T) {
		service, _, _ := newTreatmentService(t)

		_, err := service.AddAttachment(ctx, "s5", "")
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

		_, err = service.ToggleChecklistItem(ctx, "s5", "")
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	})
}
