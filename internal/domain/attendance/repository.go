package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// GetByEmployeeAndDate looks up a record by its natural key
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (Attendance, bool, error)

	List(ctx context.Context) ([]Attendance, error)

	// Upsert atomically stores incoming when no record exists for its
	// (employee_id, attendance_date), otherwise replaces the existing record
	// with merge(existing). The bool reports an insert.
	Upsert(ctx context.Context, incoming Attendance, merge func(existing Attendance) Attendance) (Attendance, bool, error)

	// Update fails with ErrAttendanceExists when another record already
	// holds the (employee_id, attendance_date) of attendance.
	Update(ctx context.Context, attendance Attendance) (Attendance, error)
	Delete(ctx context.Context, id int64) error
}
