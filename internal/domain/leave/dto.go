package leave

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultApplicationListLimit = 10
	DefaultBalanceListLimit     = 10
)

// ========================================
// APPLICATION DTOs
// ========================================

type CreateLeaveApplicationRequest struct {
	EmployeeID    int64  `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	LeaveTypeID   int64  `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	IsHalfDay     bool   `json:"is_half_day"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"` // empty means Pending
	AppliedDate   string `json:"applied_date"`
}

type UpdateLeaveApplicationRequest struct {
	ID            int64   `json:"-"`
	EmployeeID    *int64  `json:"employee_id,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   *int64  `json:"leave_type_id,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	IsHalfDay     *bool   `json:"is_half_day,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	Status        *string `json:"status,omitempty"`
	AppliedDate   *string `json:"applied_date,omitempty"`
}

type LeaveApplicationFilter struct {
	// Search & Filter
	Search      *string `json:"search,omitempty"`
	EmployeeID  *int64  `json:"employee_id,omitempty"`
	LeaveTypeID *int64  `json:"leave_type_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	StartDate   *string `json:"start_date,omitempty"` // matches StartDate >= value
	EndDate     *string `json:"end_date,omitempty"`   // matches StartDate <= value

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveApplicationFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultApplicationListLimit)...)
	errs = append(errs, validator.OneOf("status", f.Status, ApplicationStatuses)...)
	errs = append(errs, validator.OptionalDate("start_date", f.StartDate)...)
	errs = append(errs, validator.OptionalDate("end_date", f.EndDate)...)

	return errs.OrNil()
}

type LeaveApplicationStats struct {
	TotalApplications int             `json:"total_applications"`
	ByStatus          map[string]int  `json:"by_status"`
	ByLeaveType       map[string]int  `json:"by_leave_type"`
	PendingCount      int             `json:"pending_count"`
	ApprovedDays      decimal.Decimal `json:"approved_days"`
}

type ListLeaveApplicationResponse struct {
	LeaveApplications []LeaveApplication    `json:"leave_applications"`
	Meta              query.Meta            `json:"meta"`
	Stats             LeaveApplicationStats `json:"stats"`
}

// ========================================
// BALANCE DTOs
// ========================================

// LeaveTypeItemRequest omits balance; it is always derived.
type LeaveTypeItemRequest struct {
	LeaveTypeID    int64           `json:"leave_type_id"`
	LeaveTypeName  string          `json:"leave_type_name"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	Used           decimal.Decimal `json:"used"`
}

type CreateLeaveBalanceRequest struct {
	EmployeeID     int64                  `json:"employee_id"`
	EmployeeName   string                 `json:"employee_name"`
	Year           int                    `json:"year"`
	LeaveTypeItems []LeaveTypeItemRequest `json:"leave_type_items"`
}

type UpdateLeaveBalanceRequest struct {
	ID             int64                  `json:"-"`
	EmployeeID     *int64                 `json:"employee_id,omitempty"`
	EmployeeName   *string                `json:"employee_name,omitempty"`
	Year           *int                   `json:"year,omitempty"`
	LeaveTypeItems []LeaveTypeItemRequest `json:"leave_type_items,omitempty"`
}

type LeaveBalanceFilter struct {
	Search     *string `json:"search,omitempty"`
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Year       *int    `json:"year,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveBalanceFilter) Validate() error {
	var errs validator.ValidationErrors
	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultBalanceListLimit)...)
	return errs.OrNil()
}

type LeaveBalanceStats struct {
	TotalRecords   int             `json:"total_records"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalUsed      decimal.Decimal `json:"total_used"`
	TotalBalance   decimal.Decimal `json:"total_balance"`
}

type ListLeaveBalanceResponse struct {
	LeaveBalances []LeaveBalance    `json:"leave_balances"`
	Meta          query.Meta        `json:"meta"`
	Stats         LeaveBalanceStats `json:"stats"`
}
