package attendance

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

const DefaultListLimit = 100

// MarkAttendanceRequest creates the day's record or, when one exists,
// overwrites the fields that are set. Nil punch times keep the stored ones.
type MarkAttendanceRequest struct {
	EmployeeID     int64   `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	AttendanceDate string  `json:"attendance_date"`
	Status         string  `json:"status"`
	PunchInTime    *string `json:"punch_in_time,omitempty"`
	PunchOutTime   *string `json:"punch_out_time,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

type MarkAttendanceResult struct {
	Outcome    MarkOutcome `json:"outcome"`
	Attendance Attendance  `json:"attendance"`
}

type UpdateAttendanceRequest struct {
	ID             int64   `json:"-"`
	EmployeeID     *int64  `json:"employee_id,omitempty"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	AttendanceDate *string `json:"attendance_date,omitempty"`
	Status         *string `json:"status,omitempty"`
	PunchInTime    *string `json:"punch_in_time,omitempty"`
	PunchOutTime   *string `json:"punch_out_time,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

type AttendanceFilter struct {
	// Search & Filter
	Search     *string `json:"search,omitempty"`
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultListLimit)...)
	errs = append(errs, validator.OneOf("status", f.Status, Statuses)...)
	errs = append(errs, validator.OptionalDate("start_date", f.StartDate)...)
	errs = append(errs, validator.OptionalDate("end_date", f.EndDate)...)

	return errs.OrNil()
}

// AttendanceStats summarises the filtered records.
type AttendanceStats struct {
	TotalRecords   int            `json:"total_records"`
	ByStatus       map[string]int `json:"by_status"`
	AttendanceRate float64        `json:"attendance_rate"`
	AverageHours   float64        `json:"average_hours"`
}

type ListAttendanceResponse struct {
	Attendances []Attendance    `json:"attendances"`
	Meta        query.Meta      `json:"meta"`
	Stats       AttendanceStats `json:"stats"`
}
