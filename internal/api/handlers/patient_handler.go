package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// PatientService defines the interface for patient operations
type PatientService interface {
	CreatePatient(ctx context.Context, patient *entities.Patient) (*entities.Patient, error)
	GetPatient(ctx context.Context, id string) (*entities.Patient, error)
	UpdatePatient(ctx context.Context, id string, patch entities.PatientPatch) (*entities.Patient, error)
	DeletePatient(ctx context.Context, id string) error
	ListPatients(ctx context.Context) ([]*entities.Patient, error)
	ListPatientTreatments(ctx context.Context, id string) ([]*entities.Treatment, error)
}

// PatientHandler handles patient requests
type PatientHandler struct {
	service PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(service PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// ListPatients handles GET /api/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListPatients(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients": patients,
		"count":    len(patients),
	})
}

// CreatePatient handles POST /api/patients
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var patient entities.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.CreatePatient(r.Context(), &patient)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetPatient handles GET /api/patients/{id}
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "patient ID is required")
		return
	}

	patient, err := h.service.GetPatient(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// UpdatePatient handles PATCH /api/patients/{id}
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.PatientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	patient, err := h.service.UpdatePatient(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/patients/{id}
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeletePatient(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPatientTreatments handles GET /api/patients/{id}/treatments
func (h *PatientHandler) GetPatientTreatments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	treatments, err := h.service.ListPatientTreatments(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}
