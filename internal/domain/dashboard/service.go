package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns every section, computed concurrently
	GetDashboard(ctx context.Context, req DashboardRequest) (DashboardResponse, error)

	// GetEmployeeSummary returns headcount with new joiners in the month of req.Date
	GetEmployeeSummary(ctx context.Context, req DashboardRequest) (EmployeeSummaryResponse, error)

	// GetAttendanceSummary returns attendance statistics for req.Date
	GetAttendanceSummary(ctx context.Context, req DashboardRequest) (AttendanceSummaryResponse, error)

	// GetAttendanceTrend returns present counts for the req.Days days ending at req.Date
	GetAttendanceTrend(ctx context.Context, req DashboardRequest) (AttendanceTrendResponse, error)

	GetHiringSummary(ctx context.Context) (HiringSummaryResponse, error)
	GetLeaveSummary(ctx context.Context) (LeaveSummaryResponse, error)
	GetPayrollSummary(ctx context.Context) (PayrollSummaryResponse, error)
}
