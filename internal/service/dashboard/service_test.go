package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

type stores struct {
	employees    employee.EmployeeRepository
	attendance   attendance.AttendanceRepository
	candidates   candidate.CandidateRepository
	jobPostings  jobposting.JobPostingRepository
	applications leave.LeaveApplicationRepository
	payrolls     payroll.PayrollRepository
}

func newTestService(t *testing.T) (dashboard.DashboardService, stores) {
	t.Helper()
	now := func() time.Time { return today }
	db := database.NewMemoryDB(database.WithClock(now))
	s := stores{
		employees:    memory.NewEmployeeRepository(db),
		attendance:   memory.NewAttendanceRepository(db),
		candidates:   memory.NewCandidateRepository(db),
		jobPostings:  memory.NewJobPostingRepository(db),
		applications: memory.NewLeaveApplicationRepository(db),
		payrolls:     memory.NewPayrollRepository(db),
	}
	repo := memory.NewDashboardRepository(s.employees, s.attendance, s.candidates, s.jobPostings, s.applications, s.payrolls)
	return NewDashboardService(repo, latency.None(), now), s
}

func seed(t *testing.T, s stores) {
	t.Helper()
	ctx := context.Background()

	for _, e := range []employee.Employee{
		{Name: "Ani", DepartmentName: "Engineering", DesignationName: "Engineer", JoiningDate: "2024-03-01", IsActive: record.Active},
		{Name: "Budi", DepartmentName: "Engineering", DesignationName: "Engineer", JoiningDate: "2023-06-10", IsActive: record.Active},
		{Name: "Citra", DepartmentName: "Finance", DesignationName: "Analyst", JoiningDate: "2024-02-29", IsActive: record.Inactive},
	} {
		_, err := s.employees.Create(ctx, e)
		require.NoError(t, err)
	}

	for _, a := range []attendance.Attendance{
		{EmployeeID: 1, AttendanceDate: "2024-03-15", Status: attendance.StatusPresent},
		{EmployeeID: 2, AttendanceDate: "2024-03-15", Status: attendance.StatusAbsent},
		{EmployeeID: 1, AttendanceDate: "2024-03-14", Status: attendance.StatusPresent},
		{EmployeeID: 2, AttendanceDate: "2024-03-14", Status: attendance.StatusPresent},
		{EmployeeID: 1, AttendanceDate: "2024-03-01", Status: attendance.StatusPresent},
	} {
		_, err := s.attendance.(interface {
			Create(context.Context, attendance.Attendance) (attendance.Attendance, error)
		}).Create(ctx, a)
		require.NoError(t, err)
	}

	for _, c := range []candidate.Candidate{
		{Name: "Dewi", JobPostingTitle: "Backend Engineer", Status: candidate.StatusApplied},
		{Name: "Eko", JobPostingTitle: "Backend Engineer", Status: candidate.StatusHired},
	} {
		_, err := s.candidates.Create(ctx, c)
		require.NoError(t, err)
	}
	_, err := s.jobPostings.Create(ctx, jobposting.JobPosting{Title: "Backend Engineer", Status: jobposting.StatusOpen})
	require.NoError(t, err)
	_, err = s.jobPostings.Create(ctx, jobposting.JobPosting{Title: "Accountant", Status: jobposting.StatusClosed})
	require.NoError(t, err)

	for _, l := range []leave.LeaveApplication{
		{EmployeeID: 1, LeaveTypeName: "Annual", Status: leave.StatusApproved, TotalDays: decimal.NewFromInt(3)},
		{EmployeeID: 2, LeaveTypeName: "Sick", Status: leave.StatusPending, TotalDays: decimal.NewFromInt(1)},
	} {
		_, err := s.applications.Create(ctx, l)
		require.NoError(t, err)
	}

	for _, p := range []payroll.PayrollProcessing{
		{Month: 1, Year: 2024, Status: payroll.PayrollStatusPaid, TotalEmployees: 2, TotalNetSalary: decimal.NewFromInt(1000)},
		{Month: 2, Year: 2024, Status: payroll.PayrollStatusProcessed, TotalEmployees: 2, TotalNetSalary: decimal.NewFromInt(1100)},
	} {
		_, err := s.payrolls.Create(ctx, p)
		require.NoError(t, err)
	}
}

func TestDashboardService_GetDashboard_CombinesSections(t *testing.T) {
	svc, s := newTestService(t)
	seed(t, s)

	resp, err := svc.GetDashboard(context.Background(), dashboard.DashboardRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Date)

	assert.Equal(t, 3, resp.EmployeeSummary.TotalEmployees)
	assert.Equal(t, 2, resp.EmployeeSummary.ActiveEmployees)
	assert.Equal(t, 1, resp.EmployeeSummary.NewJoiners)
	assert.Equal(t, "2024-03", resp.EmployeeSummary.Month)

	assert.Equal(t, 2, resp.AttendanceSummary.TotalRecords)
	assert.Equal(t, 50.0, resp.AttendanceSummary.AttendanceRate)
	assert.Len(t, resp.AttendanceSummary.LatestRecords, 2)

	require.Len(t, resp.AttendanceTrend.Present, dashboard.DefaultTrendDays)
	assert.Equal(t, "2024-03-09", resp.AttendanceTrend.Present[0].Bucket)
	assert.Equal(t, 2, resp.AttendanceTrend.Present[5].Count)
	assert.Equal(t, 1, resp.AttendanceTrend.Present[6].Count)

	assert.Equal(t, 2, resp.HiringSummary.TotalCandidates)
	assert.Equal(t, 1, resp.HiringSummary.OpenPostings)
	assert.Equal(t, 50.0, resp.HiringSummary.ConversionRate)

	assert.Equal(t, 1, resp.LeaveSummary.PendingCount)
	assert.True(t, decimal.NewFromInt(3).Equal(resp.LeaveSummary.ApprovedDays))

	assert.Equal(t, 2, resp.PayrollSummary.TotalRuns)
	assert.True(t, decimal.NewFromInt(1000).Equal(resp.PayrollSummary.TotalPaidNetSalary))
	require.NotNil(t, resp.PayrollSummary.LatestRun)
	assert.Equal(t, 2, resp.PayrollSummary.LatestRun.Month)
}

func TestDashboardService_GetDashboard_EmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.GetDashboard(context.Background(), dashboard.DashboardRequest{Date: "2024-01-31", Days: 3})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.EmployeeSummary.TotalEmployees)
	assert.Empty(t, resp.AttendanceSummary.ByStatus)
	assert.Equal(t, 0.0, resp.AttendanceSummary.AttendanceRate)
	require.Len(t, resp.AttendanceTrend.Present, 3)
	assert.Equal(t, "2024-01-29", resp.AttendanceTrend.Present[0].Bucket)
	assert.Nil(t, resp.PayrollSummary.LatestRun)
}

func TestDashboardService_GetAttendanceTrend_ExplicitDate(t *testing.T) {
	svc, s := newTestService(t)
	seed(t, s)

	resp, err := svc.GetAttendanceTrend(context.Background(), dashboard.DashboardRequest{Date: "2024-03-14", Days: 2})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", resp.EndDate)
	assert.Equal(t, 2, resp.Days)
	require.Len(t, resp.Present, 2)
	assert.Equal(t, 0, resp.Present[0].Count)
	assert.Equal(t, 2, resp.Present[1].Count)
}

func TestDashboardService_RejectsBadRequest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetDashboard(ctx, dashboard.DashboardRequest{Date: "15/03/2024"})
	assert.Error(t, err)

	_, err = svc.GetAttendanceSummary(ctx, dashboard.DashboardRequest{Days: dashboard.MaxTrendDays + 1})
	assert.Error(t, err)
}

func TestDashboardService_CancelledContext(t *testing.T) {
	svc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetHiringSummary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
