package entities

// RecordType distinguishes money coming in from money going out
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// Valid reports whether the record type is known
func (t RecordType) Valid() bool {
	return t == RecordTypeIncome || t == RecordTypeExpense
}

// PaymentStatus represents the settlement state of a financial record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Valid reports whether the payment status is known
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled:
		return true
	}
	return false
}

// ResponsibleType indicates who the record is billed to or paid by
type ResponsibleType string

const (
	ResponsiblePatient ResponsibleType = "patient"
	ResponsibleClinic  ResponsibleType = "clinic"
)

// FinancialRecord is an income or expense entry, optionally linked to a
// treatment at creation time
type FinancialRecord struct {
	ID              string          `json:"id"`
	TreatmentID     string          `json:"treatmentId,omitempty"`
	Type            RecordType      `json:"type"`
	Amount          float64         `json:"amount"`
	Date            string          `json:"date"`
	PaymentDate     string          `json:"paymentDate,omitempty"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Status          PaymentStatus   `json:"status"`
	ResponsibleType ResponsibleType `json:"responsibleType"`
	PatientID       string          `json:"patientId,omitempty"`
	CreatedBy       string          `json:"createdBy"`
}

// FinancialRecordPatch lists the mutable fields of a FinancialRecord
type FinancialRecordPatch struct {
	Type        *RecordType    `json:"type,omitempty"`
	Amount      *float64       `json:"amount,omitempty"`
	Date        *string        `json:"date,omitempty"`
	PaymentDate *string        `json:"paymentDate,omitempty"`
	Description *string        `json:"description,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Status      *PaymentStatus `json:"status,omitempty"`
}

// Apply merges the patch into the record
func (p FinancialRecordPatch) Apply(r FinancialRecord) FinancialRecord {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.PaymentDate != nil {
		r.PaymentDate = *p.PaymentDate
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}
