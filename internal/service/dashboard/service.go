package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	attendancesvc "github.com/cmlabs-hris/hris-records-go/internal/service/attendance"
	candidatesvc "github.com/cmlabs-hris/hris-records-go/internal/service/candidate"
	employeesvc "github.com/cmlabs-hris/hris-records-go/internal/service/employee"
	leavesvc "github.com/cmlabs-hris/hris-records-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	latency latency.Simulator
	now     func() time.Time
	group   singleflight.Group
}

func NewDashboardService(repo dashboard.DashboardRepository, sim latency.Simulator, now func() time.Time) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		latency:             sim,
		now:                 now,
	}
}

// referenceDay resolves req.Date, defaulting to today.
func (s *DashboardServiceImpl) referenceDay(req dashboard.DashboardRequest) time.Time {
	if req.Date != "" {
		if t, err := time.Parse(record.DateLayout, req.Date); err == nil {
			return t
		}
	}
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetDashboard returns combined dashboard data. Concurrent calls for the
// same day and window share one computation.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.DashboardRequest) (dashboard.DashboardResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	day := s.referenceDay(req)
	key := fmt.Sprintf("dashboard:%s:%d", day.Format(record.DateLayout), req.Days)

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.buildDashboard(ctx, day, req.Days)
	})
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return v.(dashboard.DashboardResponse), nil
}

func (s *DashboardServiceImpl) buildDashboard(ctx context.Context, day time.Time, days int) (dashboard.DashboardResponse, error) {
	resp := dashboard.DashboardResponse{Date: day.Format(record.DateLayout)}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resp.EmployeeSummary, err = s.employeeSummary(gCtx, day)
		return err
	})

	g.Go(func() error {
		records, err := s.Attendance(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		resp.AttendanceSummary = attendanceSummary(records, day)
		resp.AttendanceTrend = attendanceTrend(records, day, days)
		return nil
	})

	g.Go(func() error {
		var err error
		resp.HiringSummary, err = s.hiringSummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.LeaveSummary, err = s.leaveSummary(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.PayrollSummary, err = s.payrollSummary(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return resp, nil
}

// ========== EMPLOYEES ==========

func (s *DashboardServiceImpl) GetEmployeeSummary(ctx context.Context, req dashboard.DashboardRequest) (dashboard.EmployeeSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}
	return s.employeeSummary(ctx, s.referenceDay(req))
}

func (s *DashboardServiceImpl) employeeSummary(ctx context.Context, day time.Time) (dashboard.EmployeeSummaryResponse, error) {
	all, err := s.Employees(ctx)
	if err != nil {
		return dashboard.EmployeeSummaryResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.Format(record.DateLayout)
	to := monthStart.AddDate(0, 1, -1).Format(record.DateLayout)
	joiners := query.Filter(all, query.DateRange(&from, &to, func(e employee.Employee) string { return e.JoiningDate }))

	stats := employeesvc.Stats(all)
	return dashboard.EmployeeSummaryResponse{
		TotalEmployees:    stats.TotalEmployees,
		ActiveEmployees:   stats.ActiveEmployees,
		InactiveEmployees: stats.InactiveEmployees,
		NewJoiners:        len(joiners),
		Month:             monthStart.Format("2006-01"),
		ByDepartment:      stats.ByDepartment,
		ByDesignation:     stats.ByDesignation,
	}, nil
}

// ========== ATTENDANCE ==========

func (s *DashboardServiceImpl) GetAttendanceSummary(ctx context.Context, req dashboard.DashboardRequest) (dashboard.AttendanceSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.AttendanceSummaryResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.AttendanceSummaryResponse{}, err
	}

	records, err := s.Attendance(ctx)
	if err != nil {
		return dashboard.AttendanceSummaryResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	return attendanceSummary(records, s.referenceDay(req)), nil
}

func attendanceSummary(records []attendance.Attendance, day time.Time) dashboard.AttendanceSummaryResponse {
	date := day.Format(record.DateLayout)
	today := query.Filter(records, func(a attendance.Attendance) bool { return a.AttendanceDate == date })
	stats := attendancesvc.Stats(today)

	latest := query.Latest(today, dashboard.LatestRecords, func(a, b attendance.Attendance) bool {
		return a.UpdateDate.After(b.UpdateDate)
	})

	return dashboard.AttendanceSummaryResponse{
		Date:           date,
		TotalRecords:   stats.TotalRecords,
		ByStatus:       stats.ByStatus,
		AttendanceRate: stats.AttendanceRate,
		AverageHours:   stats.AverageHours,
		LatestRecords:  latest,
	}
}

func (s *DashboardServiceImpl) GetAttendanceTrend(ctx context.Context, req dashboard.DashboardRequest) (dashboard.AttendanceTrendResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.AttendanceTrendResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.AttendanceTrendResponse{}, err
	}

	records, err := s.Attendance(ctx)
	if err != nil {
		return dashboard.AttendanceTrendResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	return attendanceTrend(records, s.referenceDay(req), req.Days), nil
}

func attendanceTrend(records []attendance.Attendance, day time.Time, days int) dashboard.AttendanceTrendResponse {
	buckets := query.DateBuckets(day, days)
	present := query.CountByBuckets(records, buckets,
		func(a attendance.Attendance) string { return a.AttendanceDate },
		func(a attendance.Attendance) bool { return a.Status == attendance.StatusPresent },
	)
	return dashboard.AttendanceTrendResponse{
		EndDate: day.Format(record.DateLayout),
		Days:    days,
		Present: present,
	}
}

// ========== HIRING ==========

func (s *DashboardServiceImpl) GetHiringSummary(ctx context.Context) (dashboard.HiringSummaryResponse, error) {
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.HiringSummaryResponse{}, err
	}
	return s.hiringSummary(ctx)
}

func (s *DashboardServiceImpl) hiringSummary(ctx context.Context) (dashboard.HiringSummaryResponse, error) {
	candidates, err := s.Candidates(ctx)
	if err != nil {
		return dashboard.HiringSummaryResponse{}, fmt.Errorf("failed to load candidates: %w", err)
	}
	postings, err := s.JobPostings(ctx)
	if err != nil {
		return dashboard.HiringSummaryResponse{}, fmt.Errorf("failed to load job postings: %w", err)
	}

	stats := candidatesvc.Stats(candidates)
	return dashboard.HiringSummaryResponse{
		TotalCandidates: stats.TotalCandidates,
		ByStatus:        stats.ByStatus,
		ByJobPosting:    stats.ByJobPosting,
		OpenPostings:    query.Count(postings, func(j jobposting.JobPosting) bool { return j.Status == jobposting.StatusOpen }),
		HiredCount:      stats.HiredCount,
		ConversionRate:  stats.ConversionRate,
	}, nil
}

// ========== LEAVE ==========

func (s *DashboardServiceImpl) GetLeaveSummary(ctx context.Context) (dashboard.LeaveSummaryResponse, error) {
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.LeaveSummaryResponse{}, err
	}
	return s.leaveSummary(ctx)
}

func (s *DashboardServiceImpl) leaveSummary(ctx context.Context) (dashboard.LeaveSummaryResponse, error) {
	applications, err := s.LeaveApplications(ctx)
	if err != nil {
		return dashboard.LeaveSummaryResponse{}, fmt.Errorf("failed to load leave applications: %w", err)
	}

	stats := leavesvc.ApplicationStats(applications)
	return dashboard.LeaveSummaryResponse{
		TotalApplications: stats.TotalApplications,
		ByStatus:          stats.ByStatus,
		ByLeaveType:       stats.ByLeaveType,
		PendingCount:      stats.PendingCount,
		ApprovedDays:      stats.ApprovedDays,
	}, nil
}

// ========== PAYROLL ==========

func (s *DashboardServiceImpl) GetPayrollSummary(ctx context.Context) (dashboard.PayrollSummaryResponse, error) {
	if err := s.latency.WaitList(ctx); err != nil {
		return dashboard.PayrollSummaryResponse{}, err
	}
	return s.payrollSummary(ctx)
}

func (s *DashboardServiceImpl) payrollSummary(ctx context.Context) (dashboard.PayrollSummaryResponse, error) {
	runs, err := s.Payrolls(ctx)
	if err != nil {
		return dashboard.PayrollSummaryResponse{}, fmt.Errorf("failed to load payrolls: %w", err)
	}

	paid := query.Filter(runs, func(p payroll.PayrollProcessing) bool { return p.Status == payroll.PayrollStatusPaid })
	resp := dashboard.PayrollSummaryResponse{
		TotalRuns:          len(runs),
		ByStatus:           query.GroupCount(runs, func(p payroll.PayrollProcessing) string { return string(p.Status) }),
		TotalPaidNetSalary: query.SumDecimal(paid, func(p payroll.PayrollProcessing) decimal.Decimal { return p.TotalNetSalary }),
	}

	latest := query.Latest(runs, 1, func(a, b payroll.PayrollProcessing) bool {
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.ID > b.ID
	})
	if len(latest) == 1 {
		run := latest[0]
		resp.LatestRun = &dashboard.PayrollRunSummary{
			ID:             run.ID,
			Month:          run.Month,
			Year:           run.Year,
			Status:         string(run.Status),
			TotalEmployees: run.TotalEmployees,
			TotalNetSalary: run.TotalNetSalary,
		}
	}
	return resp, nil
}
