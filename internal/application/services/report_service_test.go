package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/application/services"
	"github.com/dentaltrack/backend/internal/domain/entities"
)

// reportFixture assembles a report service over hand-picked data instead of
// the seed set, so date-based assertions stay deterministic
type reportFixture struct {
	treatments *collection.Store[entities.Treatment]
	stages     *collection.Store[entities.TreatmentStage]
	financial  *collection.Store[entities.FinancialRecord]
	patients   *collection.Store[entities.Patient]
	templates  *collection.Store[entities.ProcedureTemplate]
	users      *collection.Store[entities.User]
}

func newReportFixture(t *testing.T,
	treatments []entities.Treatment,
	stages []entities.TreatmentStage,
	records []entities.FinancialRecord,
) (*services.ReportService, *reportFixture) {
	t.Helper()
	slot := newMemSlot()
	logger := zerolog.Nop()
	f := &reportFixture{
		treatments: collection.NewStore(slot, "test_treatments",
			func(x entities.Treatment) string { return x.ID }, treatments, logger),
		stages: collection.NewStore(slot, "test_treatmentStages",
			func(x entities.TreatmentStage) string { return x.ID }, stages, logger),
		financial: collection.NewStore(slot, "test_financialRecords",
			func(x entities.FinancialRecord) string { return x.ID }, records, logger),
		patients: collection.NewStore(slot, "test_patients",
			func(x entities.Patient) string { return x.ID },
			[]entities.Patient{{ID: "p1", Name: "João Pedro Oliveira"}}, logger),
		templates: collection.NewStore(slot, "test_templates",
			func(x entities.ProcedureTemplate) string { return x.ID },
			[]entities.ProcedureTemplate{{ID: "tpl1", Name: "Tratamento de Canal"}}, logger),
		users: collection.NewStore(slot, "test_users",
			func(x entities.User) string { return x.ID },
			[]entities.User{{ID: "u1", Name: "Dr. Roberto Lima"}}, logger),
	}
	ctx := context.Background()
	for _, err := range []error{
		loadStore(ctx, f.treatments),
		loadStore(ctx, f.stages),
		loadStore(ctx, f.financial),
		loadStore(ctx, f.patients),
		loadStore(ctx, f.templates),
		loadStore(ctx, f.users),
	} {
		require.NoError(t, err)
	}

	service := services.NewReportService(
		collection.NewTreatmentAdapter(f.treatments),
		collection.NewTreatmentStageAdapter(f.stages),
		collection.NewFinancialAdapter(f.financial),
		collection.NewPatientAdapter(f.patients),
		collection.NewProcedureTemplateAdapter(f.templates),
		collection.NewUserAdapter(f.users),
	)
	return service, f
}

func loadStore[T any](ctx context.Context, store *collection.Store[T]) error {
	_, err := store.Load(ctx)
	return err
}

func TestReportService_Metrics(t *testing.T) {
	ctx := context.Background()
	today := time.Now().Format(entities.DateLayout)
	lastYear := time.Now().AddDate(-1, 0, 0).Format(entities.DateLayout)

	t.Run("counts today's appointments from start and stage dates", func(t *testing.T) {
		service, _ := newReportFixture(t,
			[]entities.Treatment{
				{ID: "t1", PatientID: "p1", TemplateID: "tpl1", DentistID: "u1",
					StartDate: today, Status: entities.TreatmentStatusScheduled},
				{ID: "t2", PatientID: "p1", TemplateID: "tpl1", DentistID: "u1",
					StartDate: lastYear, Status: entities.TreatmentStatusInProgress},
				{ID: "t3", PatientID: "p1", TemplateID: "tpl1", DentistID: "u1",
					StartDate: lastYear, Status: entities.TreatmentStatusCompleted},
			},
			[]entities.TreatmentStage{
				{ID: "s1", TreatmentID: "t2", OrderIndex: 1, ScheduledDate: today,
					Status: entities.StageStatusInProgress},
				{ID: "s2", TreatmentID: "t3", OrderIndex: 1, ScheduledDate: lastYear,
					Status: entities.StageStatusCompleted},
			},
			nil,
		)

		metrics, err := service.Metrics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, metrics.TodayAppointments, "t1 by start date, t2 by stage date")
		assert.Equal(t, 1, metrics.InProgressTreatments)
		assert.Zero(t, metrics.MonthlyRevenue)
	})

	t.Run("monthly revenue sums this month's income only", func(t *testing.T) {
		service, _ := newReportFixture(t, nil, nil,
			[]entities.FinancialRecord{
				{ID: "f1", Type: entities.RecordTypeIncome, Amount: 800, Date: today},
				{ID: "f2", Type: entities.RecordTypeIncome, Amount: 500, Date: today},
				{ID: "f3", Type: entities.RecordTypeIncome, Amount: 999, Date: lastYear},
				{ID: "f4", Type: entities.RecordTypeExpense, Amount: 300, Date: today},
			},
		)

		metrics, err := service.Metrics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1300.0, metrics.MonthlyRevenue)
	})
}

func TestReportService_Report(t *testing.T) {
	ctx := context.Background()
	today := time.Now().Format(entities.DateLayout)

	t.Run("renders the active treatments with resolved names", func(t *testing.T) {
		service, _ := newReportFixture(t,
			[]entities.Treatment{
				{ID: "t1", PatientID: "p1", TemplateID: "tpl1", DentistID: "u1",
					StartDate: "2024-11-20", Status: entities.TreatmentStatusInProgress},
				{ID: "t2", PatientID: "ghost", TemplateID: "ghost", DentistID: "ghost",
					StartDate: "2024-12-01", Status: entities.TreatmentStatusScheduled},
				{ID: "t3", PatientID: "p1", TemplateID: "tpl1", DentistID: "u1",
					StartDate: "2024-01-10", Status: entities.TreatmentStatusCompleted},
			},
			nil, nil,
		)

		report, err := service.Report(ctx)

		require.NoError(t, err)
		assert.Contains(t, report, "DentalTrack - Clinic Report")
		assert.Contains(t, report, fmt.Sprintf("Generated: %s", today))
		assert.Contains(t, report, "- João Pedro Oliveira | Tratamento de Canal | Dr. Roberto Lima (started 2024-11-20)")
		assert.Contains(t, report, "- unknown patient | unknown procedure | unassigned (started 2024-12-01)")
		assert.NotContains(t, report, "2024-01-10", "completed treatments are not listed")
	})

	t.Run("reports none when nothing is active", func(t *testing.T) {
		service, _ := newReportFixture(t, nil, nil, nil)

		report, err := service.Report(ctx)

		require.NoError(t, err)
		assert.Contains(t, report, "Active treatments:\n- none\n")
	})
}
