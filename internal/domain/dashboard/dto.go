package dashboard

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultTrendDays = 7
	MaxTrendDays     = 90
	LatestRecords    = 10
)

// DashboardRequest selects the reference day. An empty Date means today
// and a zero Days means DefaultTrendDays.
type DashboardRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Days int    `json:"days"`
}

func (r *DashboardRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		errs = append(errs, validator.OptionalDate("date", &r.Date)...)
	}
	if r.Days < 0 || r.Days > MaxTrendDays {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days must be between 1 and " + validator.Itoa(MaxTrendDays)})
	}
	if r.Days == 0 {
		r.Days = DefaultTrendDays
	}

	return errs.OrNil()
}

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Date              string                    `json:"date"`
	EmployeeSummary   EmployeeSummaryResponse   `json:"employee_summary"`
	AttendanceSummary AttendanceSummaryResponse `json:"attendance_summary"`
	AttendanceTrend   AttendanceTrendResponse   `json:"attendance_trend"`
	HiringSummary     HiringSummaryResponse     `json:"hiring_summary"`
	LeaveSummary      LeaveSummaryResponse      `json:"leave_summary"`
	PayrollSummary    PayrollSummaryResponse    `json:"payroll_summary"`
}

// ========== EMPLOYEES ==========

type EmployeeSummaryResponse struct {
	TotalEmployees    int            `json:"total_employees"`
	ActiveEmployees   int            `json:"active_employees"`
	InactiveEmployees int            `json:"inactive_employees"`
	NewJoiners        int            `json:"new_joiners"` // joined in Month
	Month             string         `json:"month"`       // Format: "YYYY-MM"
	ByDepartment      map[string]int `json:"by_department"`
	ByDesignation     map[string]int `json:"by_designation"`
}

// ========== ATTENDANCE ==========

// AttendanceSummaryResponse describes a single day
type AttendanceSummaryResponse struct {
	Date           string                  `json:"date"` // Format: "YYYY-MM-DD"
	TotalRecords   int                     `json:"total_records"`
	ByStatus       map[string]int          `json:"by_status"`
	AttendanceRate float64                 `json:"attendance_rate"`
	AverageHours   float64                 `json:"average_hours"`
	LatestRecords  []attendance.Attendance `json:"latest_records"`
}

type AttendanceTrendResponse struct {
	EndDate string              `json:"end_date"`
	Days    int                 `json:"days"`
	Present []query.BucketCount `json:"present"`
}

// ========== HIRING ==========

type HiringSummaryResponse struct {
	TotalCandidates int            `json:"total_candidates"`
	ByStatus        map[string]int `json:"by_status"`
	ByJobPosting    map[string]int `json:"by_job_posting"`
	OpenPostings    int            `json:"open_postings"`
	HiredCount      int            `json:"hired_count"`
	ConversionRate  float64        `json:"conversion_rate"`
}

// ========== LEAVE ==========

type LeaveSummaryResponse struct {
	TotalApplications int             `json:"total_applications"`
	ByStatus          map[string]int  `json:"by_status"`
	ByLeaveType       map[string]int  `json:"by_leave_type"`
	PendingCount      int             `json:"pending_count"`
	ApprovedDays      decimal.Decimal `json:"approved_days"`
}

// ========== PAYROLL ==========

type PayrollRunSummary struct {
	ID             int64           `json:"id"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	Status         string          `json:"status"`
	TotalEmployees int             `json:"total_employees"`
	TotalNetSalary decimal.Decimal `json:"total_net_salary"`
}

type PayrollSummaryResponse struct {
	TotalRuns          int                `json:"total_runs"`
	ByStatus           map[string]int     `json:"by_status"`
	TotalPaidNetSalary decimal.Decimal    `json:"total_paid_net_salary"`
	LatestRun          *PayrollRunSummary `json:"latest_run,omitempty"`
}
