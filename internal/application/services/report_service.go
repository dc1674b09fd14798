package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dentaltrack/backend/internal/domain/entities"
	"github.com/dentaltrack/backend/internal/domain/repositories"
)

// DashboardMetrics summarizes the clinic's day: appointments scheduled for
// today, treatments currently under way and income booked this month.
type DashboardMetrics struct {
	TodayAppointments    int     `json:"todayAppointments"`
	InProgressTreatments int     `json:"inProgressTreatments"`
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
}

// ReportService derives dashboard metrics and renders the plain-text report
// download. Everything is recomputed from the live collections per call.
type ReportService struct {
	treatmentRepo repositories.TreatmentRepository
	stageRepo     repositories.TreatmentStageRepository
	financialRepo repositories.FinancialRepository
	patientRepo   repositories.PatientRepository
	templateRepo  repositories.ProcedureTemplateRepository
	userRepo      repositories.UserRepository
	now           func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	treatmentRepo repositories.TreatmentRepository,
	stageRepo repositories.TreatmentStageRepository,
	financialRepo repositories.FinancialRepository,
	patientRepo repositories.PatientRepository,
	templateRepo repositories.ProcedureTemplateRepository,
	userRepo repositories.UserRepository,
) *ReportService {
	return &ReportService{
		treatmentRepo: treatmentRepo,
		stageRepo:     stageRepo,
		financialRepo: financialRepo,
		patientRepo:   patientRepo,
		templateRepo:  templateRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// Metrics computes the dashboard numbers for today
func (s *ReportService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	today := s.now().Format(entities.DateLayout)
	monthPrefix := today[:len("2006-01")]

	treatments, err := s.treatmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &DashboardMetrics{}
	for _, t := range treatments {
		if t.Status == entities.TreatmentStatusInProgress {
			metrics.InProgressTreatments++
		}
		scheduledToday := t.StartDate == today
		if !scheduledToday {
			stages, err := s.stageRepo.ListByTreatmentID(ctx, t.ID)
			if err != nil {
				return nil, err
			}
			for _, stage := range stages {
				if stage.ScheduledDate == today {
					scheduledToday = true
					break
				}
			}
		}
		if scheduledToday {
			metrics.TodayAppointments++
		}
	}

	records, err := s.financialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Type == entities.RecordTypeIncome && strings.HasPrefix(r.Date, monthPrefix) {
			metrics.MonthlyRevenue += r.Amount
		}
	}
	return metrics, nil
}

// Report renders the one-shot plain-text summary: today's metrics followed
// by the active treatments with resolved patient, procedure and dentist
// names. Missing references render as a placeholder instead of failing.
func (s *ReportService) Report(ctx context.Context) (string, error) {
	metrics, err := s.Metrics(ctx)
	if err != nil {
		return "", err
	}
	treatments, err := s.treatmentRepo.List(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "DentalTrack - Clinic Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.now().Format(entities.DateLayout))
	fmt.Fprintf(&b, "Today's appointments: %d\n", metrics.TodayAppointments)
	fmt.Fprintf(&b, "Treatments in progress: %d\n", metrics.InProgressTreatments)
	fmt.Fprintf(&b, "Month-to-date revenue: %.2f\n\n", metrics.MonthlyRevenue)

	b.WriteString("Active treatments:\n")
	active := 0
	for _, t := range treatments {
		if t.Status != entities.TreatmentStatusInProgress && t.Status != entities.TreatmentStatusScheduled {
			continue
		}
		active++
		fmt.Fprintf(&b, "- %s | %s | %s (started %s)\n",
			s.patientName(ctx, t.PatientID),
			s.templateName(ctx, t.TemplateID),
			s.dentistName(ctx, t.DentistID),
			t.StartDate)
	}
	if active == 0 {
		b.WriteString("- none\n")
	}
	return b.String(), nil
}

func (s *ReportService) patientName(ctx context.Context, id string) string {
	if patient, err := s.patientRepo.GetByID(ctx, id); err == nil {
		return patient.Name
	}
	return "unknown patient"
}

func (s *ReportService) templateName(ctx context.Context, id string) string {
	if template, err := s.templateRepo.GetByID(ctx, id); err == nil {
		return template.Name
	}
	return "unknown procedure"
}

func (s *ReportService) dentistName(ctx context.Context, id string) string {
	if user, err := s.userRepo.GetByID(ctx, id); err == nil {
		return user.Name
	}
	return "unassigned"
}
