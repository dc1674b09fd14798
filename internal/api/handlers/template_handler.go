package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// TemplateService defines the interface for procedure catalog operations
type TemplateService interface {
	CreateTemplate(ctx context.Context, template *entities.ProcedureTemplate) (*entities.ProcedureTemplate, error)
	GetTemplate(ctx context.Context, id string) (*entities.ProcedureTemplate, error)
	UpdateTemplate(ctx context.Context, id string, patch entities.ProcedureTemplatePatch) (*entities.ProcedureTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplates(ctx context.Context) ([]*entities.ProcedureTemplate, error)

	ListTemplateStages(ctx context.Context, templateID string) ([]*entities.ProcedureTemplateStage, error)
	AddStage(ctx context.Context, templateID string, stage *entities.ProcedureTemplateStage) (*entities.ProcedureTemplateStage, error)
	AddStageFromBlueprint(ctx context.Context, templateID, blueprintID string) (*entities.ProcedureTemplateStage, error)
	UpdateStage(ctx context.Context, id string, patch entities.ProcedureTemplateStagePatch) (*entities.ProcedureTemplateStage, error)
	RemoveStage(ctx context.Context, id string) error
	SwapStageOrder(ctx context.Context, firstID, secondID string) error

	CreateBlueprint(ctx context.Context, blueprint *entities.StageTemplate) (*entities.StageTemplate, error)
	GetBlueprint(ctx context.Context, id string) (*entities.StageTemplate, error)
	UpdateBlueprint(ctx context.Context, id string, patch entities.StageTemplatePatch) (*entities.StageTemplate, error)
	DeleteBlueprint(ctx context.Context, id string) error
	ListBlueprints(ctx context.Context) ([]*entities.StageTemplate, error)
}

// TemplateHandler handles procedure catalog requests
type TemplateHandler struct {
	service TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// ListTemplates handles GET /api/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"templates": templates,
		"count":     len(templates),
	})
}

// CreateTemplate handles POST /api/templates
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var template entities.ProcedureTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.CreateTemplate(r.Context(), &template)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetTemplate handles GET /api/templates/{id}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	template, err := h.service.GetTemplate(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, template)
}

// UpdateTemplate handles PATCH /api/templates/{id}
func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.ProcedureTemplatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	template, err := h.service.UpdateTemplate(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, template)
}

// DeleteTemplate handles DELETE /api/templates/{id}
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeleteTemplate(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTemplateStages handles GET /api/templates/{id}/stages
func (h *TemplateHandler) ListTemplateStages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stages, err := h.service.ListTemplateStages(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stages": stages,
		"count":  len(stages),
	})
}

type addStageRequest struct {
	entities.ProcedureTemplateStage
	// BlueprintID builds the stage from a reusable blueprint instead of the
	// inline fields
	BlueprintID string `json:"blueprintId,omitempty"`
}

// AddStage handles POST /api/templates/{id}/stages
func (h *TemplateHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req addStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	var stage *entities.ProcedureTemplateStage
	var err error
	if req.BlueprintID != "" {
		stage, err = h.service.AddStageFromBlueprint(r.Context(), id, req.BlueprintID)
	} else {
		stage, err = h.service.AddStage(r.Context(), id, &req.ProcedureTemplateStage)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, stage)
}

// UpdateStage handles PATCH /api/template-stages/{id}
func (h *TemplateHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.ProcedureTemplateStagePatch
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

// RemoveStage handles DELETE /api/template-stages/{id}
func (h *TemplateHandler) RemoveStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.RemoveStage(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type swapStageRequest struct {
	OtherStageID string `json:"otherStageId"`
}

// SwapStage handles POST /api/template-stages/{id}/swap
func (h *TemplateHandler) SwapStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req swapStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.OtherStageID == "" {
		respondWithError(w, http.StatusBadRequest, "otherStageId is required")
		return
	}

	if err := h.service.SwapStageOrder(r.Context(), id, req.OtherStageID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "swapped"})
}

// ListBlueprints handles GET /api/stage-templates
func (h *TemplateHandler) ListBlueprints(w http.ResponseWriter, r *http.Request) {
	blueprints, err := h.service.ListBlueprints(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"stageTemplates": blueprints,
		"count":          len(blueprints),
	})
}

// CreateBlueprint handles POST /api/stage-templates
func (h *TemplateHandler) CreateBlueprint(w http.ResponseWriter, r *http.Request) {
	var blueprint entities.StageTemplate
	if err := json.NewDecoder(r.Body).Decode(&blueprint); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.CreateBlueprint(r.Context(), &blueprint)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetBlueprint handles GET /api/stage-templates/{id}
func (h *TemplateHandler) GetBlueprint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	blueprint, err := h.service.GetBlueprint(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, blueprint)
}

// UpdateBlueprint handles PATCH /api/stage-templates/{id}
func (h *TemplateHandler) UpdateBlueprint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.StageTemplatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	blueprint, err := h.service.UpdateBlueprint(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, blueprint)
}

// DeleteBlueprint handles DELETE /api/stage-templates/{id}
func (h *TemplateHandler) DeleteBlueprint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeleteBlueprint(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
