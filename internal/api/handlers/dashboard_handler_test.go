package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dentaltrack/backend/internal/api/handlers"
	"github.com/dentaltrack/backend/internal/application/services"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Metrics(ctx context.Context) (*services.DashboardMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DashboardMetrics), args.Error(1)
}

func (m *MockReportService) Report(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestDashboardHandler_GetMetrics(t *testing.T) {
	mockReports := new(MockReportService)
	handler := handlers.NewDashboardHandler(mockReports, new(MockAdminService))

	mockReports.On("Metrics", mock.Anything).
		Return(&services.DashboardMetrics{TodayAppointments: 3, InProgressTreatments: 2, MonthlyRevenue: 2750}, nil)

	req := httptest.NewRequest("GET", "/api/dashboard/metrics", nil)
	w := httptest.NewRecorder()
	handler.GetMetrics(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"todayAppointments":3,"inProgressTreatments":2,"monthlyRevenue":2750}`,
		w.Body.String())
}

func TestDashboardHandler_GetReport(t *testing.T) {
	mockReports := new(MockReportService)
	handler := handlers.NewDashboardHandler(mockReports, new(MockAdminService))

	mockReports.On("Report", mock.Anything).
		Return("DentalTrack - Clinic Report\n", nil)

	req := httptest.NewRequest("GET", "/api/dashboard/report", nil)
	w := httptest.NewRecorder()
	handler.GetReport(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="clinic-report.txt"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "DentalTrack - Clinic Report")
}

func TestDashboardHandler_Reset(t *testing.T) {
	mockAdmin := new(MockAdminService)
	handler := handlers.NewDashboardHandler(new(MockReportService), mockAdmin)

	mockAdmin.On("Reset", mock.Anything).Return(nil)

	req := httptest.NewRequest("POST", "/api/admin/reset", nil)
	w := httptest.NewRecorder()
	handler.Reset(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset")
	mockAdmin.AssertExpectations(t)
}
