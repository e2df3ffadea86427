package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id int64) (Attendance, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// MarkAttendance upserts by (employee_id, attendance_date) and reports which branch ran
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResult, error)

	// CreateAttendance is MarkAttendance for callers that only need the record
	CreateAttendance(ctx context.Context, req MarkAttendanceRequest) (Attendance, error)

	// UpdateAttendance updates an attendance record, recomputing total hours
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)

	// DeleteAttendance removes an attendance record
	DeleteAttendance(ctx context.Context, id int64) error
}
