package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
)

// DashboardRepository hands out read snapshots of every collection the
// dashboard aggregates.
type DashboardRepository interface {
	Employees(ctx context.Context) ([]employee.Employee, error)
	Attendance(ctx context.Context) ([]attendance.Attendance, error)
	Candidates(ctx context.Context) ([]candidate.Candidate, error)
	JobPostings(ctx context.Context) ([]jobposting.JobPosting, error)
	LeaveApplications(ctx context.Context) ([]leave.LeaveApplication, error)
	Payrolls(ctx context.Context) ([]payroll.PayrollProcessing, error)
}
