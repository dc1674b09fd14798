package entities

// ProcedureTemplate is a reusable catalog entry for a clinical procedure,
// e.g. "Implante Dentário Unitário"
type ProcedureTemplate struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	BaseCost          float64 `json:"baseCost"`
	EstimatedDuration string  `json:"estimatedDuration"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
}

// ProcedureTemplatePatch lists the mutable fields of a ProcedureTemplate
type ProcedureTemplatePatch struct {
	Name              *string  `json:"name,omitempty"`
	BaseCost          *float64 `json:"baseCost,omitempty"`
	EstimatedDuration *string  `json:"estimatedDuration,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Category          *string  `json:"category,omitempty"`
}

// Apply merges the patch into the template
func (p ProcedureTemplatePatch) Apply(t ProcedureTemplate) ProcedureTemplate {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.BaseCost != nil {
		t.BaseCost = *p.BaseCost
	}
	if p.EstimatedDuration != nil {
		t.EstimatedDuration = *p.EstimatedDuration
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}

// ProcedureTemplateStage is one ordered step of a procedure template.
// OrderIndex values within a template form a dense 1-based ascending sequence;
// the swap operation is the only reordering primitive.
type ProcedureTemplateStage struct {
	ID             string   `json:"id"`
	TemplateID     string   `json:"templateId"`
	Name           string   `json:"name"`
	OrderIndex     int      `json:"orderIndex"`
	Description    string   `json:"description"`
	ChecklistItems []string `json:"checklistItems"`
}

// ProcedureTemplateStagePatch lists the mutable fields of a template stage.
// OrderIndex is only touched by swap/renumber operations.
type ProcedureTemplateStagePatch struct {
	Name           *string   `json:"name,omitempty"`
	OrderIndex     *int      `json:"orderIndex,omitempty"`
	Description    *string   `json:"description,omitempty"`
	ChecklistItems *[]string `json:"checklistItems,omitempty"`
}

// Apply merges the patch into the stage
func (p ProcedureTemplateStagePatch) Apply(s ProcedureTemplateStage) ProcedureTemplateStage {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.OrderIndex != nil {
		s.OrderIndex = *p.OrderIndex
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.ChecklistItems != nil {
		s.ChecklistItems = *p.ChecklistItems
	}
	return s
}
