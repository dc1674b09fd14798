package entities

// StageTemplate is a reusable stage blueprint, independent of any procedure
// template, used to populate new procedure template stages
type StageTemplate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DefaultDuration string   `json:"defaultDuration"`
	ChecklistItems  []string `json:"checklistItems"`
}

// StageTemplatePatch lists the mutable fields of a StageTemplate
type StageTemplatePatch struct {
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	DefaultDuration *string   `json:"defaultDuration,omitempty"`
	ChecklistItems  *[]string `json:"checklistItems,omitempty"`
}

// Apply merges the patch into the stage template
func (p StageTemplatePatch) Apply(t StageTemplate) StageTemplate {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DefaultDuration != nil {
		t.DefaultDuration = *p.DefaultDuration
	}
	if p.ChecklistItems != nil {
		t.ChecklistItems = *p.ChecklistItems
	}
	return t
}
