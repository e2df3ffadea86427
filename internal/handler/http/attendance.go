package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendance handles GET /attendance
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := attendance.AttendanceFilter{
		Search:     q.String("search"),
		EmployeeID: q.Int64("employee_id"),
		Status:     q.String("status"),
		StartDate:  q.String("start_date"),
		EndDate:    q.String("end_date"),
	}
	filter.Page, filter.Limit = q.Page()
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, result.Attendances, result.Meta, result.Stats)
}

// GetAttendance handles GET /attendance/{id}
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAttendance handles POST /attendance/mark. The response status tells
// whether the day's record was created (201) or updated (200).
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Outcome == attendance.OutcomeCreated {
		response.Created(w, "Attendance marked successfully", result)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// CreateAttendance handles POST /attendance
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance created successfully", result)
}

// UpdateAttendance handles PUT /attendance/{id}
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req attendance.UpdateAttendanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.attendanceService.UpdateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated successfully", result)
}

// DeleteAttendance handles DELETE /attendance/{id}
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
