package leave

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/shopspring/decimal"
)

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusApproved  ApplicationStatus = "Approved"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusCancelled ApplicationStatus = "Cancelled"
)

var ApplicationStatuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

var halfDay = decimal.NewFromFloat(0.5)

// LeaveApplication entity
type LeaveApplication struct {
	record.Base
	EmployeeID    int64             `json:"employee_id"`
	EmployeeName  string            `json:"employee_name"`
	LeaveTypeID   int64             `json:"leave_type_id"`
	LeaveTypeName string            `json:"leave_type_name"`
	StartDate     string            `json:"start_date"` // YYYY-MM-DD
	EndDate       string            `json:"end_date"`   // YYYY-MM-DD
	TotalDays     decimal.Decimal   `json:"total_days"`
	IsHalfDay     bool              `json:"is_half_day"`
	Reason        string            `json:"reason,omitempty"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   string            `json:"applied_date"` // YYYY-MM-DD
}

// Recompute derives TotalDays: 0.5 for a half day, otherwise the calendar
// days from StartDate to EndDate inclusive. Unparseable or reversed dates
// give 0.
func (l *LeaveApplication) Recompute() {
	l.TotalDays = TotalDays(l.StartDate, l.EndDate, l.IsHalfDay)
}

const secondsPerDay = 24 * 60 * 60

func TotalDays(start, end string, isHalfDay bool) decimal.Decimal {
	if isHalfDay {
		return halfDay
	}
	from, err := time.Parse(record.DateLayout, start)
	if err != nil {
		return decimal.Zero
	}
	to, err := time.Parse(record.DateLayout, end)
	if err != nil || to.Before(from) {
		return decimal.Zero
	}
	// Parsed dates sit at UTC midnight, so Unix seconds divide evenly.
	days := (to.Unix()-from.Unix())/secondsPerDay + 1
	return decimal.NewFromInt(days)
}

// LeaveTypeItem is one leave type's allotment inside a LeaveBalance.
type LeaveTypeItem struct {
	LeaveTypeID   int64  `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	record.Allocation
}

// LeaveBalance holds an employee's allotments for one year.
type LeaveBalance struct {
	record.Base
	EmployeeID     int64           `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Year           int             `json:"year"`
	LeaveTypeItems []LeaveTypeItem `json:"leave_type_items"`
}

// Clone implements database.Cloner.
func (b LeaveBalance) Clone() LeaveBalance {
	b.LeaveTypeItems = slices.Clone(b.LeaveTypeItems)
	return b
}

// Recompute refreshes every item balance.
func (b *LeaveBalance) Recompute() {
	for i := range b.LeaveTypeItems {
		b.LeaveTypeItems[i].Recompute()
	}
}
