package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees handles GET /employees
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := employee.EmployeeFilter{
		Search:             q.String("search"),
		DepartmentID:       q.Int64("department_id"),
		DesignationID:      q.Int64("designation_id"),
		ShiftID:            q.Int64("shift_id"),
		ReportingManagerID: q.Int64("reporting_manager_id"),
		IsActive:           q.String("is_active"),
		JoiningDateFrom:    q.String("joining_date_from"),
		JoiningDateTo:      q.String("joining_date_to"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.Employees, result.Meta, result.Stats)
}

// GetEmployee handles GET /employees/{id}
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee handles POST /employees
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee handles PUT /employees/{id}
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee handles DELETE /employees/{id}
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
