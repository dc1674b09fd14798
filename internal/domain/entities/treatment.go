package entities

// TreatmentStatus represents the overall status of a treatment
type TreatmentStatus string

const (
	TreatmentStatusScheduled  TreatmentStatus = "scheduled"
	TreatmentStatusInProgress TreatmentStatus = "in_progress"
	TreatmentStatusCompleted  TreatmentStatus = "completed"
	TreatmentStatusCancelled  TreatmentStatus = "cancelled"
)

// Valid reports whether the status is a known treatment status
func (s TreatmentStatus) Valid() bool {
	switch s {
	case TreatmentStatusScheduled, TreatmentStatusInProgress,
		TreatmentStatusCompleted, TreatmentStatusCancelled:
		return true
	}
	return false
}

// Treatment is a procedure template instantiated for a concrete patient
type Treatment struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patientId"`
	TemplateID     string          `json:"templateId"`
	StartDate      string          `json:"startDate"`
	Status         TreatmentStatus `json:"status"`
	CurrentStageID string          `json:"currentStageId"`
	DentistID      string          `json:"dentistId"`
	TotalCost      float64         `json:"totalCost"`
	Notes          string          `json:"notes,omitempty"`
}

// TreatmentPatch lists the mutable fields of a Treatment
type TreatmentPatch struct {
	StartDate      *string          `json:"startDate,omitempty"`
	Status         *TreatmentStatus `json:"status,omitempty"`
	CurrentStageID *string          `json:"currentStageId,omitempty"`
	DentistID      *string          `json:"dentistId,omitempty"`
	TotalCost      *float64         `json:"totalCost,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// Apply merges the patch into the treatment
func (p TreatmentPatch) Apply(t Treatment) Treatment {
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.CurrentStageID != nil {
		t.CurrentStageID = *p.CurrentStageID
	}
	if p.DentistID != nil {
		t.DentistID = *p.DentistID
	}
	if p.TotalCost != nil {
		t.TotalCost = *p.TotalCost
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	return t
}
