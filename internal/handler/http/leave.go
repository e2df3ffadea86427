package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type LeaveHandler interface {
	// Applications
	ListApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	CreateApplication(w http.ResponseWriter, r *http.Request)
	UpdateApplication(w http.ResponseWriter, r *http.Request)
	DeleteApplication(w http.ResponseWriter, r *http.Request)

	// Balances
	ListBalances(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	CreateBalance(w http.ResponseWriter, r *http.Request)
	UpdateBalance(w http.ResponseWriter, r *http.Request)
	DeleteBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ========== APPLICATIONS ==========

// ListApplications handles GET /leave-applications
func (h *leaveHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := leave.LeaveApplicationFilter{
		Search:      q.String("search"),
		EmployeeID:  q.Int64("employee_id"),
		LeaveTypeID: q.Int64("leave_type_id"),
		Status:      q.String("status"),
		StartDate:   q.String("start_date"),
		EndDate:     q.String("end_date"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListLeaveApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.LeaveApplications, result.Meta, result.Stats)
}

// GetApplication handles GET /leave-applications/{id}
func (h *leaveHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.GetLeaveApplication(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateApplication handles POST /leave-applications
func (h *leaveHandlerImpl) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.leaveService.CreateLeaveApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application created successfully", result)
}

// UpdateApplication handles PUT /leave-applications/{id}
func (h *leaveHandlerImpl) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req leave.UpdateLeaveApplicationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.leaveService.UpdateLeaveApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application updated successfully", result)
}

// DeleteApplication handles DELETE /leave-applications/{id}
func (h *leaveHandlerImpl) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.DeleteLeaveApplication(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application deleted successfully", nil)
}

// ========== BALANCES ==========

// ListBalances handles GET /leave-balances
func (h *leaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := leave.LeaveBalanceFilter{
		Search:     q.String("search"),
		EmployeeID: q.Int64("employee_id"),
		Year:       q.Int("year"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListLeaveBalances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.LeaveBalances, result.Meta, result.Stats)
}

// GetBalance handles GET /leave-balances/{id}
func (h *leaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.GetLeaveBalance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateBalance handles POST /leave-balances
func (h *leaveHandlerImpl) CreateBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveBalanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.leaveService.CreateLeaveBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balance created successfully", result)
}

// UpdateBalance handles PUT /leave-balances/{id}
func (h *leaveHandlerImpl) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req leave.UpdateLeaveBalanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.leaveService.UpdateLeaveBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated successfully", result)
}

// DeleteBalance handles DELETE /leave-balances/{id}
func (h *leaveHandlerImpl) DeleteBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.leaveService.DeleteLeaveBalance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance deleted successfully", nil)
}
