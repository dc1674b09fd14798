package routes

import (
	"net/http"

	"github.com/dentaltrack/backend/internal/api/handlers"
	"github.com/dentaltrack/backend/internal/api/middleware"
	"github.com/dentaltrack/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler      *handlers.AuthHandler
	patientHandler   *handlers.PatientHandler
	teamHandler      *handlers.TeamHandler
	templateHandler  *handlers.TemplateHandler
	treatmentHandler *handlers.TreatmentHandler
	financialHandler *handlers.FinancialHandler
	dashboardHandler *handlers.DashboardHandler

	sessions       middleware.SessionChecker
	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	patientHandler *handlers.PatientHandler,
	teamHandler *handlers.TeamHandler,
	templateHandler *handlers.TemplateHandler,
	treatmentHandler *handlers.TreatmentHandler,
	financialHandler *handlers.FinancialHandler,
	dashboardHandler *handlers.DashboardHandler,
	sessions middleware.SessionChecker,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		teamHandler:      teamHandler,
		templateHandler:  templateHandler,
		treatmentHandler: treatmentHandler,
		financialHandler: financialHandler,
		dashboardHandler: dashboardHandler,
		sessions:         sessions,
		allowedOrigins:   allowedOrigins,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/auth/session", r.authHandler.Session)

	// Patient endpoints
	r.mux.HandleFunc("GET /api/patients", r.patientHandler.ListPatients)
	r.mux.HandleFunc("POST /api/patients", r.patientHandler.CreatePatient)
	r.mux.HandleFunc("GET /api/patients/{id}", r.patientHandler.GetPatient)
	r.mux.HandleFunc("PATCH /api/patients/{id}", r.patientHandler.UpdatePatient)
	r.mux.HandleFunc("DELETE /api/patients/{id}", r.patientHandler.DeletePatient)
	r.mux.HandleFunc("GET /api/patients/{id}/treatments", r.patientHandler.GetPatientTreatments)

	// Team endpoints
	r.mux.HandleFunc("GET /api/team", r.teamHandler.ListUsers)
	r.mux.HandleFunc("POST /api/team", r.teamHandler.CreateUser)
	r.mux.HandleFunc("GET /api/team/{id}", r.teamHandler.GetUser)
	r.mux.HandleFunc("PATCH /api/team/{id}", r.teamHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /api/team/{id}", r.teamHandler.DeleteUser)

	// Procedure catalog endpoints
	r.mux.HandleFunc("GET /api/templates", r.templateHandler.ListTemplates)
	r.mux.HandleFunc("POST /api/templates", r.templateHandler.CreateTemplate)
	r.mux.HandleFunc("GET /api/templates/{id}", r.templateHandler.GetTemplate)
	r.mux.HandleFunc("PATCH /api/templates/{id}", r.templateHandler.UpdateTemplate)
	r.mux.HandleFunc("DELETE /api/templates/{id}", r.templateHandler.DeleteTemplate)
	r.mux.HandleFunc("GET /api/templates/{id}/stages", r.templateHandler.ListTemplateStages)
	r.mux.HandleFunc("POST /api/templates/{id}/stages", r.templateHandler.AddStage)
	r.mux.HandleFunc("PATCH /api/template-stages/{id}", r.templateHandler.UpdateStage)
	r.mux.HandleFunc("DELETE /api/template-stages/{id}", r.templateHandler.RemoveStage)
	r.mux.HandleFunc("POST /api/template-stages/{id}/swap", r.templateHandler.SwapStage)

	// Stage blueprint endpoints
	r.mux.HandleFunc("GET /api/stage-templates", r.templateHandler.ListBlueprints)
	r.mux.HandleFunc("POST /api/stage-templates", r.templateHandler.CreateBlueprint)
	r.mux.HandleFunc("GET /api/stage-templates/{id}", r.templateHandler.GetBlueprint)
	r.mux.HandleFunc("PATCH /api/stage-templates/{id}", r.templateHandler.UpdateBlueprint)
	r.mux.HandleFunc("DELETE /api/stage-templates/{id}", r.templateHandler.DeleteBlueprint)

	// Treatment endpoints
	r.mux.HandleFunc("GET /api/treatments", r.treatmentHandler.ListTreatments)
	r.mux.HandleFunc("POST /api/treatments", r.treatmentHandler.CreateTreatment)
	r.mux.HandleFunc("GET /api/treatments/{id}", r.treatmentHandler.GetTreatment)
	r.mux.HandleFunc("PATCH /api/treatments/{id}", r.treatmentHandler.UpdateTreatment)
	r.mux.HandleFunc("DELETE /api/treatments/{id}", r.treatmentHandler.DeleteTreatment)
	r.mux.HandleFunc("GET /api/treatments/{id}/stages", r.treatmentHandler.GetStages)
	r.mux.HandleFunc("GET /api/treatments/{id}/progress", r.treatmentHandler.GetProgress)
	r.mux.HandleFunc("GET /api/treatments/{id}/financial", r.financialHandler.GetTreatmentRecords)
	r.mux.HandleFunc("PATCH /api/treatment-stages/{id}", r.treatmentHandler.UpdateStage)
	r.mux.HandleFunc("POST /api/treatment-stages/{id}/attachments", r.treatmentHandler.AddAttachment)
	r.mux.HandleFunc("POST /api/treatment-stages/{id}/checklist", r.treatmentHandler.ToggleChecklistItem)

	// Financial endpoints
	r.mux.HandleFunc("GET /api/financial", r.financialHandler.ListRecords)
	r.mux.HandleFunc("POST /api/financial", r.financialHandler.CreateRecord)
	r.mux.HandleFunc("GET /api/financial/{id}", r.financialHandler.GetRecord)
	r.mux.HandleFunc("PATCH /api/financial/{id}", r.financialHandler.UpdateRecord)
	r.mux.HandleFunc("DELETE /api/financial/{id}", r.financialHandler.DeleteRecord)

	// Dashboard and maintenance endpoints
	r.mux.HandleFunc("GET /api/dashboard/metrics", r.dashboardHandler.GetMetrics)
	r.mux.HandleFunc("GET /api/dashboard/report", r.dashboardHandler.GetReport)
	r.mux.HandleFunc("POST /api/admin/reset", r.dashboardHandler.Reset)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.AuthMiddleware(r.sessions)(handler)
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
