package entities

// DateLayout is the calendar-date format used throughout the durable store
const DateLayout = "2006-01-02"

// Patient represents a clinic patient
type Patient struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	CPF                 string `json:"cpf"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	BirthDate           string `json:"birthDate"`
	HealthInsuranceID   string `json:"healthInsuranceId,omitempty"`
	HealthInsuranceName string `json:"healthInsuranceName,omitempty"`
	Address             string `json:"address"`
	CreatedAt           string `json:"createdAt"`
}

// PatientPatch lists the mutable fields of a Patient
type PatientPatch struct {
	Name                *string `json:"name,omitempty"`
	CPF                 *string `json:"cpf,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	BirthDate           *string `json:"birthDate,omitempty"`
	HealthInsuranceID   *string `json:"healthInsuranceId,omitempty"`
	HealthInsuranceName *string `json:"healthInsuranceName,omitempty"`
	Address             *string `json:"address,omitempty"`
}

// Apply merges the patch into the patient
func (p PatientPatch) Apply(pt Patient) Patient {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.CPF != nil {
		pt.CPF = *p.CPF
	}
	if p.Phone != nil {
		pt.Phone = *p.Phone
	}
	if p.Email != nil {
		pt.Email = *p.Email
	}
	if p.BirthDate != nil {
		pt.BirthDate = *p.BirthDate
	}
	if p.HealthInsuranceID != nil {
		pt.HealthInsuranceID = *p.HealthInsuranceID
	}
	if p.HealthInsuranceName != nil {
		pt.HealthInsuranceName = *p.HealthInsuranceName
	}
	if p.Address != nil {
		pt.Address = *p.Address
	}
	return pt
}
