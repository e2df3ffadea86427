package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	latency        latency.Simulator
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, sim latency.Simulator) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		latency:        sim,
	}
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id int64) (attendance.Attendance, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return attendance.Attendance{}, err
	}
	return s.attendanceRepo.GetByID(ctx, id)
}

// MarkAttendance creates the record for (employee, date) or updates the
// existing one in place. Total hours are recomputed on both paths.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResult, error) {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return attendance.MarkAttendanceResult{}, err
	}

	incoming := attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		AttendanceDate: req.AttendanceDate,
		Status:         attendance.Status(req.Status),
		PunchInTime:    req.PunchInTime,
		PunchOutTime:   req.PunchOutTime,
	}
	utils.Patch(&incoming.Remarks, req.Remarks)
	incoming.Recompute()

	merge := func(existing attendance.Attendance) attendance.Attendance {
		if req.EmployeeName != "" {
			existing.EmployeeName = req.EmployeeName
		}
		if req.Status != "" {
			existing.Status = attendance.Status(req.Status)
		}
		utils.PatchPtr(&existing.PunchInTime, req.PunchInTime)
		utils.PatchPtr(&existing.PunchOutTime, req.PunchOutTime)
		utils.Patch(&existing.Remarks, req.Remarks)
		existing.Recompute()
		return existing
	}

	stored, created, err := s.attendanceRepo.Upsert(ctx, incoming, merge)
	if err != nil {
		return attendance.MarkAttendanceResult{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	outcome := attendance.OutcomeUpdated
	if created {
		outcome = attendance.OutcomeCreated
	}

	slog.InfoContext(ctx, "Attendance marked",
		"attendance_id", stored.ID,
		"employee_id", stored.EmployeeID,
		"date", stored.AttendanceDate,
		"outcome", outcome,
	)

	return attendance.MarkAttendanceResult{Outcome: outcome, Attendance: stored}, nil
}

func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	result, err := s.MarkAttendance(ctx, req)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return result.Attendance, nil
}

func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return attendance.Attendance{}, err
	}

	current, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	utils.Patch(&current.EmployeeID, req.EmployeeID)
	utils.Patch(&current.EmployeeName, req.EmployeeName)
	utils.Patch(&current.AttendanceDate, req.AttendanceDate)
	if req.Status != nil {
		current.Status = attendance.Status(*req.Status)
	}
	utils.PatchPtr(&current.PunchInTime, req.PunchInTime)
	utils.PatchPtr(&current.PunchOutTime, req.PunchOutTime)
	utils.Patch(&current.Remarks, req.Remarks)
	current.Recompute()

	updated, err := s.attendanceRepo.Update(ctx, current)
	if err != nil {
		return attendance.Attendance{}, err
	}

	slog.InfoContext(ctx, "Attendance updated", "attendance_id", updated.ID)
	return updated, nil
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Attendance deleted", "attendance_id", id)
	return nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	all, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	filtered := FilterAttendance(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return attendance.ListAttendanceResponse{
		Attendances: page.Items,
		Meta:        page.Meta,
		Stats:       Stats(filtered),
	}, nil
}

// FilterAttendance applies every criterion of filter except pagination.
func FilterAttendance(all []attendance.Attendance, filter attendance.AttendanceFilter) []attendance.Attendance {
	var status *attendance.Status
	if filter.Status != nil {
		st := attendance.Status(*filter.Status)
		status = &st
	}

	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(a attendance.Attendance) string { return a.EmployeeName },
			func(a attendance.Attendance) string { return string(a.Status) },
			func(a attendance.Attendance) string { return a.Remarks },
		),
		query.Equals(filter.EmployeeID, func(a attendance.Attendance) int64 { return a.EmployeeID }),
		query.Equals(status, func(a attendance.Attendance) attendance.Status { return a.Status }),
		query.DateRange(filter.StartDate, filter.EndDate, func(a attendance.Attendance) string { return a.AttendanceDate }),
	)
}

// Stats summarises records by status with the present rate and the mean
// of the recorded hours.
func Stats(records []attendance.Attendance) attendance.AttendanceStats {
	present := query.Count(records, func(a attendance.Attendance) bool { return a.Status == attendance.StatusPresent })
	withHours := query.Filter(records, func(a attendance.Attendance) bool { return a.TotalHours != nil })

	return attendance.AttendanceStats{
		TotalRecords:   len(records),
		ByStatus:       query.GroupCount(records, func(a attendance.Attendance) string { return string(a.Status) }),
		AttendanceRate: query.Rate(present, len(records)),
		AverageHours:   query.Average(withHours, func(a attendance.Attendance) float64 { return *a.TotalHours }),
	}
}
