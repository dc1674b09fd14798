package collection

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/providers"
	"github.com/dentaltrack/backend/internal/domain/repositories"
	"github.com/dentaltrack/backend/internal/seed"
)

// Slot keys, one per collection. The session marker lives in its own slot.
const (
	KeyUsers                   = "dentaltrack_users"
	KeyPatients                = "dentaltrack_patients"
	KeyProcedureTemplates      = "dentaltrack_procedureTemplates"
	KeyProcedureTemplateStages = "dentaltrack_procedureTemplateStages"
	KeyStageTemplates          = "dentaltrack_stageTemplates"
	KeyTreatments              = "dentaltrack_treatments"
	KeyTreatmentStages         = "dentaltrack_treatmentStages"
	KeyFinancialRecords        = "dentaltrack_financialRecords"
	KeySession                 = "dentaltrack_user"
)

// Collections bundles every collection store over one slot backend
type Collections struct {
	Users                   *Store[entities.User]
	Patients                *Store[entities.Patient]
	ProcedureTemplates      *Store[entities.ProcedureTemplate]
	ProcedureTemplateStages *Store[entities.ProcedureTemplateStage]
	StageTemplates          *Store[entities.StageTemplate]
	Treatments              *Store[entities.Treatment]
	TreatmentStages         *Store[entities.TreatmentStage]
	FinancialRecords        *Store[entities.FinancialRecord]
	Session                 *Single[entities.Session]

	slot providers.SlotStore
}

// NewCollections wires every collection store onto slot with its seed dataset
func NewCollections(slot providers.SlotStore, logger zerolog.Logger) *Collections {
	return &Collections{
		Users: NewStore(slot, KeyUsers,
			func(u entities.User) string { return u.ID }, seed.Users(), logger),
		Patients: NewStore(slot, KeyPatients,
			func(p entities.Patient) string { return p.ID }, seed.Patients(), logger),
		ProcedureTemplates: NewStore(slot, KeyProcedureTemplates,
			func(t entities.ProcedureTemplate) string { return t.ID }, seed.ProcedureTemplates(), logger),
		ProcedureTemplateStages: NewStore(slot, KeyProcedureTemplateStages,
			func(s entities.ProcedureTemplateStage) string { return s.ID }, seed.ProcedureTemplateStages(), logger),
		StageTemplates: NewStore(slot, KeyStageTemplates,
			func(t entities.StageTemplate) string { return t.ID }, seed.StageTemplates(), logger),
		Treatments: NewStore(slot, KeyTreatments,
			func(t entities.Treatment) string { return t.ID }, seed.Treatments(), logger),
		TreatmentStages: NewStore(slot, KeyTreatmentStages,
			func(s entities.TreatmentStage) string { return s.ID }, seed.TreatmentStages(), logger),
		FinancialRecords: NewStore(slot, KeyFinancialRecords,
			func(r entities.FinancialRecord) string { return r.ID }, seed.FinancialRecords(), logger),
		Session: NewSingle[entities.Session](slot, KeySession),
		slot:    slot,
	}
}

// LoadAll hydrates every collection and reports where each one's contents
// came from. Loading stops at the first storage failure.
func (c *Collections) LoadAll(ctx context.Context) (repositories.LoadReport, error) {
	report := repositories.LoadReport{}
	for key, load := range c.loaders() {
		source, err := load(ctx)
		if err != nil {
			return nil, err
		}
		report[key] = source
	}
	return report, nil
}

// ResetAll restores every collection to its seed dataset and logs out
func (c *Collections) ResetAll(ctx context.Context) error {
	resets := []func(context.Context) error{
		c.Users.ResetToSeed,
		c.Patients.ResetToSeed,
		c.ProcedureTemplates.ResetToSeed,
		c.ProcedureTemplateStages.ResetToSeed,
		c.StageTemplates.ResetToSeed,
		c.Treatments.ResetToSeed,
		c.TreatmentStages.ResetToSeed,
		c.FinancialRecords.ResetToSeed,
		c.Session.Clear,
	}
	for _, reset := range resets {
		if err := reset(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the backing slot store
func (c *Collections) Close() error {
	return c.slot.Close()
}

func (c *Collections) loaders() map[string]func(context.Context) (repositories.LoadSource, error) {
	return map[string]func(context.Context) (repositories.LoadSource, error){
		KeyUsers:                   c.Users.Load,
		KeyPatients:                c.Patients.Load,
		KeyProcedureTemplates:      c.ProcedureTemplates.Load,
		KeyProcedureTemplateStages: c.ProcedureTemplateStages.Load,
		KeyStageTemplates:          c.StageTemplates.Load,
		KeyTreatments:              c.Treatments.Load,
		KeyTreatmentStages:         c.TreatmentStages.Load,
		KeyFinancialRecords:        c.FinancialRecords.Load,
	}
}
