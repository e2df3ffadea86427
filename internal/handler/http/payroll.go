package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Processing
	ListPayrolls(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	CreatePayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
	ProcessPayroll(w http.ResponseWriter, r *http.Request)

	// Salary slips
	ListSalarySlips(w http.ResponseWriter, r *http.Request)
	GetSalarySlip(w http.ResponseWriter, r *http.Request)
	CreateSalarySlip(w http.ResponseWriter, r *http.Request)
	UpdateSalarySlip(w http.ResponseWriter, r *http.Request)
	DeleteSalarySlip(w http.ResponseWriter, r *http.Request)

	// Salary structures
	ListSalaryStructures(w http.ResponseWriter, r *http.Request)
	GetSalaryStructure(w http.ResponseWriter, r *http.Request)
	CreateSalaryStructure(w http.ResponseWriter, r *http.Request)
	UpdateSalaryStructure(w http.ResponseWriter, r *http.Request)
	DeleteSalaryStructure(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PROCESSING ==========

// ListPayrolls handles GET /payrolls
func (h *payrollHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := payroll.PayrollFilter{
		Search: q.String("search"),
		Status: q.String("status"),
		Month:  q.Int("month"),
		Year:   q.Int("year"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.Payrolls, result.Meta, result.Stats)
}

// GetPayroll handles GET /payrolls/{id}
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePayroll handles POST /payrolls
func (h *payrollHandlerImpl) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.payrollService.CreatePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created successfully", result)
}

// UpdatePayroll handles PUT /payrolls/{id}
func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdatePayrollRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.payrollService.UpdatePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", result)
}

// DeletePayroll handles DELETE /payrolls/{id}
func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.DeletePayroll(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}

// ProcessPayroll handles POST /payrolls/{id}/process
func (h *payrollHandlerImpl) ProcessPayroll(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ProcessPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed successfully", result)
}

// ========== SALARY SLIPS ==========

func (h *payrollHandlerImpl) ListSalarySlips(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := payroll.SalarySlipFilter{
		Search:              q.String("search"),
		PayrollProcessingID: q.Int64("payroll_processing_id"),
		EmployeeID:          q.Int64("employee_id"),
		Month:               q.Int("month"),
		Year:                q.Int("year"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListSalarySlips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.SalarySlips, result.Meta, result.Stats)
}

func (h *payrollHandlerImpl) GetSalarySlip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetSalarySlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) CreateSalarySlip(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalarySlipRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.payrollService.CreateSalarySlip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip created successfully", result)
}

func (h *payrollHandlerImpl) UpdateSalarySlip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdateSalarySlipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.payrollService.UpdateSalarySlip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip updated successfully", result)
}

func (h *payrollHandlerImpl) DeleteSalarySlip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.DeleteSalarySlip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip deleted successfully", nil)
}

// ========== SALARY STRUCTURES ==========

func (h *payrollHandlerImpl) ListSalaryStructures(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := payroll.SalaryStructureFilter{
		Search:     q.String("search"),
		EmployeeID: q.Int64("employee_id"),
		IsActive:   q.String("is_active"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListSalaryStructures(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.SalaryStructures, result.Meta, result.Stats)
}

func (h *payrollHandlerImpl) GetSalaryStructure(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetSalaryStructure(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) CreateSalaryStructure(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateSalaryStructureRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.payrollService.CreateSalaryStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created successfully", result)
}

func (h *payrollHandlerImpl) UpdateSalaryStructure(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req payroll.UpdateSalaryStructureRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.payrollService.UpdateSalaryStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated successfully", result)
}

func (h *payrollHandlerImpl) DeleteSalaryStructure(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.DeleteSalaryStructure(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure deleted successfully", nil)
}
