package payroll

import (
	"slices"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "Draft"
	PayrollStatusProcessed PayrollStatus = "Processed"
	PayrollStatusPaid      PayrollStatus = "Paid"
	PayrollStatusCancelled PayrollStatus = "Cancelled"
)

var PayrollStatuses = []string{
	string(PayrollStatusDraft),
	string(PayrollStatusProcessed),
	string(PayrollStatusPaid),
	string(PayrollStatusCancelled),
}

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning   ComponentType = "Earning"
	ComponentTypeDeduction ComponentType = "Deduction"
)

var ComponentTypes = []string{string(ComponentTypeEarning), string(ComponentTypeDeduction)}

// NetSalary is earnings less deductions less leave deductions.
func NetSalary(earnings, deductions, leaveDeductions decimal.Decimal) decimal.Decimal {
	return earnings.Sub(deductions).Sub(leaveDeductions)
}

// PayrollItem - one employee's line in a payroll run
type PayrollItem struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

// PayrollProcessing - a monthly payroll run. Header totals are derived
// from Items on every write.
type PayrollProcessing struct {
	record.Base
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	Status               PayrollStatus   `json:"status"`
	ProcessedDate        *string         `json:"processed_date,omitempty"` // YYYY-MM-DD
	Remarks              string          `json:"remarks,omitempty"`
	Items                []PayrollItem   `json:"items"`
	TotalEarnings        decimal.Decimal `json:"total_earnings"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	TotalLeaveDeductions decimal.Decimal `json:"total_leave_deductions"`
	TotalNetSalary       decimal.Decimal `json:"total_net_salary"`
	TotalEmployees       int             `json:"total_employees"`
}

// Clone implements database.Cloner.
func (p PayrollProcessing) Clone() PayrollProcessing {
	p.Items = slices.Clone(p.Items)
	p.ProcessedDate = record.ClonePtr(p.ProcessedDate)
	return p
}

func (p *PayrollProcessing) Recompute() {
	p.TotalEarnings = decimal.Zero
	p.TotalDeductions = decimal.Zero
	p.TotalLeaveDeductions = decimal.Zero
	p.TotalNetSalary = decimal.Zero

	for i := range p.Items {
		item := &p.Items[i]
		item.NetSalary = NetSalary(item.TotalEarnings, item.TotalDeductions, item.LeaveDeductions)

		p.TotalEarnings = p.TotalEarnings.Add(item.TotalEarnings)
		p.TotalDeductions = p.TotalDeductions.Add(item.TotalDeductions)
		p.TotalLeaveDeductions = p.TotalLeaveDeductions.Add(item.LeaveDeductions)
		p.TotalNetSalary = p.TotalNetSalary.Add(item.NetSalary)
	}
	p.TotalEmployees = len(p.Items)
}

// SalarySlip - an employee's payslip, produced by processing a run or
// entered directly
type SalarySlip struct {
	record.Base
	PayrollProcessingID int64           `json:"payroll_processing_id"`
	SlipNumber          string          `json:"slip_number"`
	EmployeeID          int64           `json:"employee_id"`
	EmployeeName        string          `json:"employee_name"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	TotalEarnings       decimal.Decimal `json:"total_earnings"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	LeaveDeductions     decimal.Decimal `json:"leave_deductions"`
	NetSalary           decimal.Decimal `json:"net_salary"`
}

func (s *SalarySlip) Recompute() {
	s.NetSalary = NetSalary(s.TotalEarnings, s.TotalDeductions, s.LeaveDeductions)
}

// StructureItem - one earning or deduction component of a structure
type StructureItem struct {
	ComponentName string        `json:"component_name"`
	ComponentType ComponentType `json:"component_type"`
	record.Allocation
}

// SalaryStructure - an employee's pay components from EffectiveFrom
type SalaryStructure struct {
	record.Base
	EmployeeID     int64             `json:"employee_id"`
	EmployeeName   string            `json:"employee_name"`
	EffectiveFrom  string            `json:"effective_from"` // YYYY-MM-DD
	IsActive       record.ActiveFlag `json:"is_active"`
	StructureItems []StructureItem   `json:"structure_items"`
}

// Clone implements database.Cloner.
func (s SalaryStructure) Clone() SalaryStructure {
	s.StructureItems = slices.Clone(s.StructureItems)
	return s
}

func (s *SalaryStructure) Recompute() {
	for i := range s.StructureItems {
		s.StructureItems[i].Recompute()
	}
}
