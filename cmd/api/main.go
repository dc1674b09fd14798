package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/api/handlers"
	"github.com/dentaltrack/backend/internal/api/routes"
	"github.com/dentaltrack/backend/internal/application/services"
	"github.com/dentaltrack/backend/internal/infrastructure/observability"
	"github.com/dentaltrack/backend/internal/infrastructure/storage"
	"github.com/dentaltrack/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the server runs fine without an endpoint
	var metrics *observability.Metrics
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			metrics, err = observability.InitMetrics()
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to initialize metrics")
			}
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	slotStore, err := storage.NewSlotStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open slot store")
	}
	slotStore = observability.NewInstrumentedSlotStore(slotStore, metrics)

	collections := collection.NewCollections(slotStore, *logger)
	defer collections.Close()

	report, err := collections.LoadAll(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load collections")
	}
	for key, source := range report {
		logger.Info().Str("collection", key).Str("source", string(source)).Msg("collection loaded")
	}

	// Repositories
	userRepo := collection.NewUserAdapter(collections.Users)
	sessionRepo := collection.NewSessionAdapter(collections.Session)
	patientRepo := collection.NewPatientAdapter(collections.Patients)
	templateRepo := collection.NewProcedureTemplateAdapter(collections.ProcedureTemplates)
	templateStageRepo := collection.NewProcedureTemplateStageAdapter(collections.ProcedureTemplateStages)
	blueprintRepo := collection.NewStageTemplateAdapter(collections.StageTemplates)
	treatmentRepo := collection.NewTreatmentAdapter(collections.Treatments)
	treatmentStageRepo := collection.NewTreatmentStageAdapter(collections.TreatmentStages)
	financialRepo := collection.NewFinancialAdapter(collections.FinancialRecords)

	// Services
	authService := services.NewAuthService(sessionRepo, cfg.Auth)
	patientService := services.NewPatientService(patientRepo, treatmentRepo)
	teamService := services.NewTeamService(userRepo)
	templateService := services.NewTemplateService(templateRepo, templateStageRepo, blueprintRepo)
	treatmentService := services.NewTreatmentService(
		treatmentRepo, treatmentStageRepo, patientRepo, userRepo,
		templateRepo, templateStageRepo, financialRepo, *logger,
	)
	financialService := services.NewFinancialService(financialRepo)
	reportService := services.NewReportService(
		treatmentRepo, treatmentStageRepo, financialRepo,
		patientRepo, templateRepo, userRepo,
	)
	adminService := services.NewAdminService(collections, *logger)

	// Handlers and routes
	router := routes.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewPatientHandler(patientService),
		handlers.NewTeamHandler(teamService),
		handlers.NewTemplateHandler(templateService),
		handlers.NewTreatmentHandler(treatmentService),
		handlers.NewFinancialHandler(financialService),
		handlers.NewDashboardHandler(reportService, adminService),
		authService,
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Str("driver", cfg.Storage.Driver).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}
	logger.Info().Msg("server stopped")
}
