package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	crud[attendance.Attendance, *attendance.Attendance]
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		crud: newCrud[attendance.Attendance, *attendance.Attendance](db, attendance.ErrAttendanceNotFound),
	}
}

func sameDay(employeeID int64, date string) func(attendance.Attendance) bool {
	return func(a attendance.Attendance) bool {
		return a.EmployeeID == employeeID && a.AttendanceDate == date
	}
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (attendance.Attendance, bool, error) {
	found, ok := r.table.Find(ctx, sameDay(employeeID, date))
	return found, ok, nil
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, incoming attendance.Attendance, merge func(existing attendance.Attendance) attendance.Attendance) (attendance.Attendance, bool, error) {
	stored, created := r.table.Upsert(ctx, sameDay(incoming.EmployeeID, incoming.AttendanceDate), incoming, merge)
	return stored, created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	updated, err := r.table.ReplaceUnique(ctx, a, sameDay(a.EmployeeID, a.AttendanceDate))
	if errors.Is(err, database.ErrDuplicateKey) {
		return updated, fmt.Errorf("employee %d on %s: %w", a.EmployeeID, a.AttendanceDate, attendance.ErrAttendanceExists)
	}
	if err != nil {
		return updated, r.wrap(a.ID, err)
	}
	return updated, nil
}
