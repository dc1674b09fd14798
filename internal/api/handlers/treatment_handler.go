package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/application/services"
	"github.com/dentaltrack/backend/internal/domain/entities"
)

// TreatmentService defines the interface for treatment execution operations
type TreatmentService interface {
	CreateTreatment(ctx context.Context, input services.CreateTreatmentInput) (*services.TreatmentDetail, error)
	GetTreatment(ctx context.Context, id string) (*services.TreatmentDetail, error)
	UpdateTreatment(ctx context.Context, id string, patch entities.TreatmentPatch) (*entities.Treatment, error)
	DeleteTreatment(ctx context.Context, id string) error
	ListTreatments(ctx context.Context) ([]*entities.Treatment, error)
	ListStages(ctx context.Context, treatmentID string) ([]*entities.TreatmentStage, error)
	Progress(ctx context.Context, treatmentID string) (entities.TreatmentProgress, error)
	UpdateStage(ctx context.Context, stageID string, patch entities.TreatmentStagePatch) (*entities.TreatmentStage, error)
	AddAttachment(ctx context.Context, stageID, filename string) (*entities.TreatmentStage, error)
	ToggleChecklistItem(ctx context.Context, stageID, item string) (*entities.TreatmentStage, error)
}

// TreatmentHandler handles treatment requests
type TreatmentHandler struct {
	service TreatmentService
}

// NewTreatmentHandler creates a new treatment handler
func NewTreatmentHandler(service TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{service: service}
}

// ListTreatments handles GET /api/treatments
func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.service.ListTreatments(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// CreateTreatment handles POST /api/treatments
func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTreatmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	detail, err := h.service.CreateTreatment(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, detail)
}

// GetTreatment handles GET /api/treatments/{id}
func (h *TreatmentHandler) GetTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	detail, err := h.service.GetTreatment(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

// UpdateTreatment handles PATCH /api/treatments/{id}
func (h *TreatmentHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.TreatmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	treatment, err := h.service.UpdateTreatment(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, treatment)
}

// DeleteTreatment handles DELETE /api/treatments/{id}
func (h *TreatmentHandler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeleteTreatment(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetStages handles GET /api/treatments/{id}/stages
func (h *TreatmentHandler) GetStages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stages, err := h.service.ListStages(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stages": stages,
		"count":  len(stages),
	})
}

// GetProgress handles GET /api/treatments/{id}/progress
func (h *TreatmentHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	progress, err := h.service.Progress(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, progress)
}

// UpdateStage handles PATCH /api/treatment-stages/{id}
func (h *TreatmentHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.TreatmentStagePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stage, err := h.service.UpdateStage(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stage)
}

type attachmentRequest struct {
	Filename string `json:"filename"`
}

// AddAttachment handles POST /api/treatment-stages/{id}/attachments
func (h *TreatmentHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req attachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stage, err := h.service.AddAttachment(r.Context(), id, req.Filename)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stage)
}

type checklistRequest struct {
	Item string `json:"item"`
}

// ToggleChecklistItem handles POST /api/treatment-stages/{id}/checklist
func (h *TreatmentHandler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req checklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	stage, err := h.service.ToggleChecklistItem(r.Context(), id, req.Item)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stage)
}
