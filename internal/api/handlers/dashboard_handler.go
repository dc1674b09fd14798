package handlers

import (
	"context"
	"net/http"

	"github.com/dentaltrack/backend/internal/application/services"
)

// ReportService defines the interface for dashboard metrics and the report
// download
type ReportService interface {
	Metrics(ctx context.Context) (*services.DashboardMetrics, error)
	Report(ctx context.Context) (string, error)
}

// AdminService defines the interface for data maintenance operations
type AdminService interface {
	Reset(ctx context.Context) error
}

// DashboardHandler handles dashboard and maintenance requests
type DashboardHandler struct {
	reports ReportService
	admin   AdminService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reports ReportService, admin AdminService) *DashboardHandler {
	return &DashboardHandler{reports: reports, admin: admin}
}

// GetMetrics handles GET /api/dashboard/metrics
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.reports.Metrics(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, metrics)
}

// GetReport handles GET /api/dashboard/report: a plain-text download
func (h *DashboardHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Report(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="clinic-report.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

// Reset handles POST /api/admin/reset
func (h *DashboardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Reset(r.Context()); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
