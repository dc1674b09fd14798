package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentaltrack/backend/internal/domain/entities"
)

// FinancialService defines the interface for ledger operations
type FinancialService interface {
	CreateRecord(ctx context.Context, record *entities.FinancialRecord) (*entities.FinancialRecord, error)
	GetRecord(ctx context.Context, id string) (*entities.FinancialRecord, error)
	UpdateRecord(ctx context.Context, id string, patch entities.FinancialRecordPatch) (*entities.FinancialRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context) ([]*entities.FinancialRecord, error)
	ListByTreatment(ctx context.Context, treatmentID string) ([]*entities.FinancialRecord, error)
}

// FinancialHandler handles ledger requests
type FinancialHandler struct {
	service FinancialService
}

// NewFinancialHandler creates a new financial handler
func NewFinancialHandler(service FinancialService) *FinancialHandler {
	return &FinancialHandler{service: service}
}

// ListRecords handles GET /api/financial
func (h *FinancialHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}

// CreateRecord handles POST /api/financial
func (h *FinancialHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var record entities.FinancialRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.CreateRecord(r.Context(), &record)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetRecord handles GET /api/financial/{id}
func (h *FinancialHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	record, err := h.service.GetRecord(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// UpdateRecord handles PATCH /api/financial/{id}
func (h *FinancialHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var patch entities.FinancialRecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := h.service.UpdateRecord(r.Context(), id, patch)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/financial/{id}
func (h *FinancialHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.DeleteRecord(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTreatmentRecords handles GET /api/treatments/{id}/financial
func (h *FinancialHandler) GetTreatmentRecords(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	records, err := h.service.ListByTreatment(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}
