package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

func TestTreatmentStage_ApplyStatus(t *testing.T) {
	t.Run("completing a stage stamps today's date", func(t *testing.T) {
		stage := entities.TreatmentStage{ID: "s1", Status: entities.StageStatusInProgress}

		updated := stage.ApplyStatus(entities.StageStatusCompleted, "2024-11-20")

		assert.Equal(t, entities.StageStatusCompleted, updated.Status)
		assert.Equal(t, "2024-11-20", updated.DateCompleted)
	})

	t.Run("an existing completion date is never overwritten", func(t *testing.T) {
		stage := entities.TreatmentStage{
			ID:            "s1",
			Status:        entities.StageStatusInProgress,
			DateCompleted: "2024-10-01",
		}

		updated := stage.ApplyStatus(entities.StageStatusCompleted, "2024-11-20")

		assert.Equal(t, "2024-10-01", updated.DateCompleted)
	})

	t.Run("leaving completed keeps the completion date", func(t *testing.T) {
		stage := entities.TreatmentStage{
			ID:            "s1",
			Status:        entities.StageStatusCompleted,
			DateCompleted: "2024-10-01",
		}

		updated := stage.ApplyStatus(entities.StageStatusInProgress, "2024-11-20")

		assert.Equal(t, entities.StageStatusInProgress, updated.Status)
		assert.Equal(t, "2024-10-01", updated.DateCompleted)
	})

	t.Run("non-completing transitions have no side effects", func(t *testing.T) {
		stage := entities.TreatmentStage{ID: "s1", Status: entities.StageStatusPending}

		updated := stage.ApplyStatus(entities.StageStatusSkipped, "2024-11-20")

		assert.Equal(t, entities.StageStatusSkipped, updated.Status)
		assert.Empty(t, updated.DateCompleted)
	})
}

func TestTreatmentStagePatch_Apply(t *testing.T) {
	base := entities.TreatmentStage{
		ID:            "s1",
		Status:        entities.StageStatusInProgress,
		ScheduledDate: "2024-11-20",
		Notes:         "original",
	}

	t.Run("unset fields are left alone", func(t *testing.T) {
		notes := "updated"

		updated := entities.TreatmentStagePatch{Notes: &notes}.Apply(base, "2024-12-01")

		assert.Equal(t, "updated", updated.Notes)
		assert.Equal(t, entities.StageStatusInProgress, updated.Status)
		assert.Equal(t, "2024-11-20", updated.ScheduledDate)
	})

	t.Run("status change routes through the completion rule", func(t *testing.T) {
		status := entities.StageStatusCompleted

		updated := entities.TreatmentStagePatch{Status: &status}.Apply(base, "2024-12-01")

		assert.Equal(t, entities.StageStatusCompleted, updated.Status)
		assert.Equal(t, "2024-12-01", updated.DateCompleted)
	})

	t.Run("explicit completion date wins over the stamp", func(t *testing.T) {
		status := entities.StageStatusCompleted
		date := "2024-11-25"

		updated := entities.TreatmentStagePatch{Status: &status, DateCompleted: &date}.Apply(base, "2024-12-01")

		assert.Equal(t, "2024-11-25", updated.DateCompleted)
	})
}

func TestTreatmentStage_ToggleChecklistItem(t *testing.T) {
	stage := entities.TreatmentStage{
		ID:             "s1",
		ChecklistItems: []string{"Anestesia", "Radiografia"},
	}

	t.Run("toggling marks the item complete", func(t *testing.T) {
		updated := stage.ToggleChecklistItem("Anestesia")

		assert.Equal(t, []string{"Anestesia"}, updated.CompletedChecklist)
	})

	t.Run("toggling twice clears it again", func(t *testing.T) {
		updated := stage.ToggleChecklistItem("Anestesia").ToggleChecklistItem("Anestesia")

		assert.Empty(t, updated.CompletedChecklist)
	})

	t.Run("items outside the checklist are ignored", func(t *testing.T) {
		updated := stage.ToggleChecklistItem("Sutura")

		assert.Empty(t, updated.CompletedChecklist)
	})

	t.Run("the receiver is not mutated", func(t *testing.T) {
		_ = stage.ToggleChecklistItem("Radiografia")

		assert.Empty(t, stage.CompletedChecklist)
	})
}

func TestTreatmentStage_AddAttachment(t *testing.T) {
	stage := entities.TreatmentStage{ID: "s1"}

	updated := stage.AddAttachment("radiografia_inicial.pdf").AddAttachment("tomografia.pdf")

	assert.Equal(t, []string{"radiografia_inicial.pdf", "tomografia.pdf"}, updated.Attachments)
	assert.Empty(t, stage.Attachments)
}
