package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
)

type dashboardRepositoryImpl struct {
	employees    employee.EmployeeRepository
	attendance   attendance.AttendanceRepository
	candidates   candidate.CandidateRepository
	jobPostings  jobposting.JobPostingRepository
	applications leave.LeaveApplicationRepository
	payrolls     payroll.PayrollRepository
}

func NewDashboardRepository(
	employees employee.EmployeeRepository,
	attendance attendance.AttendanceRepository,
	candidates candidate.CandidateRepository,
	jobPostings jobposting.JobPostingRepository,
	applications leave.LeaveApplicationRepository,
	payrolls payroll.PayrollRepository,
) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{
		employees:    employees,
		attendance:   attendance,
		candidates:   candidates,
		jobPostings:  jobPostings,
		applications: applications,
		payrolls:     payrolls,
	}
}

func (r *dashboardRepositoryImpl) Employees(ctx context.Context) ([]employee.Employee, error) {
	return r.employees.List(ctx)
}

func (r *dashboardRepositoryImpl) Attendance(ctx context.Context) ([]attendance.Attendance, error) {
	return r.attendance.List(ctx)
}

func (r *dashboardRepositoryImpl) Candidates(ctx context.Context) ([]candidate.Candidate, error) {
	return r.candidates.List(ctx)
}

func (r *dashboardRepositoryImpl) JobPostings(ctx context.Context) ([]jobposting.JobPosting, error) {
	return r.jobPostings.List(ctx)
}

func (r *dashboardRepositoryImpl) LeaveApplications(ctx context.Context) ([]leave.LeaveApplication, error) {
	return r.applications.List(ctx)
}

func (r *dashboardRepositoryImpl) Payrolls(ctx context.Context) ([]payroll.PayrollProcessing, error) {
	return r.payrolls.List(ctx)
}
