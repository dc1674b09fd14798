package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dentaltrack/backend/internal/api/handlers"
	"github.com/dentaltrack/backend/internal/domain/entities"
	apperrors "github.com/dentaltrack/backend/pkg/errors"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) CreatePatient(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPatientService) GetPatient(ctx context.Context, id string) (*entities.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPatientService) UpdatePatient(ctx context.Context, id string, patch entities.PatientPatch) (*entities.Patient, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPatientService) DeletePatient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPatientService) ListPatients(ctx context.Context) ([]*entities.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Patient), args.Error(1)
}

func (m *MockPatientService) ListPatientTreatments(ctx context.Context, id string) ([]*entities.Treatment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Treatment), args.Error(1)
}

func TestPatientHandler_ListPatients(t *testing.T) {
	mockService := new(MockPatientService)
	handler := handlers.NewPatientHandler(mockService)

	mockService.On("ListPatients", mock.Anything).Return([]*entities.Patient{
		{ID: "1", Name: "João Pedro Oliveira"},
		{ID: "2", Name: "Maria Fernanda Costa"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/patients", nil)
	w := httptest.NewRecorder()
	handler.ListPatients(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Patients []*entities.Patient `json:"patients"`
		Count    int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "João Pedro Oliveira", body.Patients[0].Name)
	mockService.AssertExpectations(t)
}

func TestPatientHandler_CreatePatient(t *testing.T) {
	t.Run("created patient is returned with 201", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("CreatePatient", mock.Anything, mock.MatchedBy(func(p *entities.Patient) bool {
			return p.Name == "Beatriz Nogueira" && p.CPF == "111.222.333-44"
		})).Return(&entities.Patient{ID: "abc", Name: "Beatriz Nogueira", CPF: "111.222.333-44"}, nil)

		req := httptest.NewRequest("POST", "/api/patients",
			strings.NewReader(`{"name":"Beatriz Nogueira","cpf":"111.222.333-44"}`))
		w := httptest.NewRecorder()
		handler.CreatePatient(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.Patient
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "abc", created.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		req := httptest.NewRequest("POST", "/api/patients", strings.NewReader("{"))
		w := httptest.NewRecorder()
		handler.CreatePatient(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreatePatient")
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("CreatePatient", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("patient cpf is required"))

		req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(`{"name":"x"}`))
		w := httptest.NewRecorder()
		handler.CreatePatient(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "patient cpf is required")
	})
}

func TestPatientHandler_GetPatient(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("GetPatient", mock.Anything, "1").
			Return(&entities.Patient{ID: "1", Name: "João Pedro Oliveira"}, nil)

		req := httptest.NewRequest("GET", "/api/patients/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.GetPatient(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing patient maps to 404", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("GetPatient", mock.Anything, "ghost").
			Return(nil, apperrors.NewNotFoundError("patient not found: ghost"))

		req := httptest.NewRequest("GET", "/api/patients/ghost", nil)
		req.SetPathValue("id", "ghost")
		w := httptest.NewRecorder()
		handler.GetPatient(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPatientHandler_DeletePatient(t *testing.T) {
	t.Run("deletion returns 204", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("DeletePatient", mock.Anything, "1").Return(nil)

		req := httptest.NewRequest("DELETE", "/api/patients/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.DeletePatient(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("patient with treatments maps to 409", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService)

		mockService.On("DeletePatient", mock.Anything, "1").
			Return(apperrors.NewConflictError("patient has treatments and cannot be deleted"))

		req := httptest.NewRequest("DELETE", "/api/patients/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.DeletePatient(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be deleted")
	})
}

func TestPatientHandler_GetPatientTreatments(t *testing.T) {
	mockService := new(MockPatientService)
	handler := handlers.NewPatientHandler(mockService)

	mockService.On("ListPatientTreatments", mock.Anything, "1").
		Return([]*entities.Treatment{{ID: "t1", PatientID: "1"}}, nil)

	req := httptest.NewRequest("GET", "/api/patients/1/treatments", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.GetPatientTreatments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Treatments []*entities.Treatment `json:"treatments"`
		Count      int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}
