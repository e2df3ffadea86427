package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetEmployeeSummary(w http.ResponseWriter, r *http.Request)
	GetAttendanceSummary(w http.ResponseWriter, r *http.Request)
	GetAttendanceTrend(w http.ResponseWriter, r *http.Request)
	GetHiringSummary(w http.ResponseWriter, r *http.Request)
	GetLeaveSummary(w http.ResponseWriter, r *http.Request)
	GetPayrollSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// dashboardRequest reads ?date=YYYY-MM-DD (default: today) and ?days=N.
func dashboardRequest(w http.ResponseWriter, r *http.Request) (dashboard.DashboardRequest, bool) {
	q := newQueryParams(r)
	req := dashboard.DashboardRequest{Date: r.URL.Query().Get("date")}
	if days := q.Int("days"); days != nil {
		req.Days = *days
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, ok := dashboardRequest(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeSummary handles GET /dashboard/employees
func (h *dashboardHandlerImpl) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	req, ok := dashboardRequest(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceSummary handles GET /dashboard/attendance
func (h *dashboardHandlerImpl) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	req, ok := dashboardRequest(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetAttendanceSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceTrend handles GET /dashboard/attendance-trend
func (h *dashboardHandlerImpl) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	req, ok := dashboardRequest(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetAttendanceTrend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHiringSummary handles GET /dashboard/hiring
func (h *dashboardHandlerImpl) GetHiringSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetHiringSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeaveSummary handles GET /dashboard/leave
func (h *dashboardHandlerImpl) GetLeaveSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetLeaveSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollSummary handles GET /dashboard/payroll
func (h *dashboardHandlerImpl) GetPayrollSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetPayrollSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
