package entities

import "slices"

// StageStatus represents the status of a single treatment stage
type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
	StageStatusSkipped    StageStatus = "skipped"
)

// Valid reports whether the status is a known stage status
func (s StageStatus) Valid() bool {
	switch s {
	case StageStatusPending, StageStatusInProgress, StageStatusCompleted, StageStatusSkipped:
		return true
	}
	return false
}

// TreatmentStage is one ordered step of a concrete treatment, copied from the
// source template stage at instantiation time
type TreatmentStage struct {
	ID                 string      `json:"id"`
	TreatmentID        string      `json:"treatmentId"`
	Name               string      `json:"name"`
	Status             StageStatus `json:"status"`
	OrderIndex         int         `json:"orderIndex"`
	ScheduledDate      string      `json:"scheduledDate,omitempty"`
	DateCompleted      string      `json:"dateCompleted,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	Attachments        []string    `json:"attachments,omitempty"`
	ChecklistItems     []string    `json:"checklistItems,omitempty"`
	CompletedChecklist []string    `json:"completedChecklist,omitempty"`
}

// TreatmentStagePatch lists the mutable fields of a treatment stage.
// ChecklistItems are fixed once the stage is created and are deliberately
// absent; checklist progress goes through ToggleChecklistItem.
type TreatmentStagePatch struct {
	Status        *StageStatus `json:"status,omitempty"`
	ScheduledDate *string      `json:"scheduledDate,omitempty"`
	DateCompleted *string      `json:"dateCompleted,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

// ApplyStatus transitions the stage to newStatus. Moving to completed stamps
// DateCompleted with today iff it is not already set; the stamp is one-way and
// never cleared by later transitions. No other transition has side effects.
func (s TreatmentStage) ApplyStatus(newStatus StageStatus, today string) TreatmentStage {
	s.Status = newStatus
	if newStatus == StageStatusCompleted && s.DateCompleted == "" {
		s.DateCompleted = today
	}
	return s
}

// Apply merges the patch into the stage, routing status changes through
// ApplyStatus so the completion-date rule always holds
func (p TreatmentStagePatch) Apply(s TreatmentStage, today string) TreatmentStage {
	if p.ScheduledDate != nil {
		s.ScheduledDate = *p.ScheduledDate
	}
	if p.DateCompleted != nil {
		s.DateCompleted = *p.DateCompleted
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.Status != nil {
		s = s.ApplyStatus(*p.Status, today)
	}
	return s
}

// AddAttachment appends a filename to the stage's attachment list.
// Attachments are filenames only; there is no file upload or storage.
func (s TreatmentStage) AddAttachment(filename string) TreatmentStage {
	s.Attachments = append(slices.Clone(s.Attachments), filename)
	return s
}

// ToggleChecklistItem toggles membership of item in CompletedChecklist.
// Items not present in ChecklistItems are ignored.
func (s TreatmentStage) ToggleChecklistItem(item string) TreatmentStage {
	if !slices.Contains(s.ChecklistItems, item) {
		return s
	}
	if i := slices.Index(s.CompletedChecklist, item); i >= 0 {
		s.CompletedChecklist = slices.Delete(slices.Clone(s.CompletedChecklist), i, i+1)
	} else {
		s.CompletedChecklist = append(slices.Clone(s.CompletedChecklist), item)
	}
	return s
}
