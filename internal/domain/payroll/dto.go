package payroll

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultPayrollListLimit   = 100
	DefaultSlipListLimit      = 10
	DefaultStructureListLimit = 10
)

func validatePeriod(month, year *int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if month != nil && (*month < 1 || *month > 12) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if year != nil && *year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a positive number"})
	}
	return errs
}

// ========================================
// PROCESSING DTOs
// ========================================

// PayrollItemRequest omits net_salary; it is always derived.
type PayrollItemRequest struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
}

type CreatePayrollRequest struct {
	Month   int                  `json:"month"`
	Year    int                  `json:"year"`
	Status  string               `json:"status"` // empty means Draft
	Remarks string               `json:"remarks,omitempty"`
	Items   []PayrollItemRequest `json:"items"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != "" {
		errs = append(errs, validator.OneOf("status", &r.Status, PayrollStatuses)...)
	}

	return errs.OrNil()
}

type UpdatePayrollRequest struct {
	ID            int64                `json:"-"`
	Month         *int                 `json:"month,omitempty"`
	Year          *int                 `json:"year,omitempty"`
	Status        *string              `json:"status,omitempty"`
	ProcessedDate *string              `json:"processed_date,omitempty"`
	Remarks       *string              `json:"remarks,omitempty"`
	Items         []PayrollItemRequest `json:"items,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.OneOf("status", r.Status, PayrollStatuses)...)

	return errs.OrNil()
}

type PayrollFilter struct {
	// Search & Filter
	Search *string `json:"search,omitempty"`
	Status *string `json:"status,omitempty"`
	Month  *int    `json:"month,omitempty"`
	Year   *int    `json:"year,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultPayrollListLimit)...)
	errs = append(errs, validator.OneOf("status", f.Status, PayrollStatuses)...)
	errs = append(errs, validatePeriod(f.Month, f.Year)...)

	return errs.OrNil()
}

type PayrollStats struct {
	TotalRuns      int             `json:"total_runs"`
	ByStatus       map[string]int  `json:"by_status"`
	TotalNetSalary decimal.Decimal `json:"total_net_salary"`
	TotalEmployees int             `json:"total_employees"`
}

type ListPayrollResponse struct {
	Payrolls []PayrollProcessing `json:"payrolls"`
	Meta     query.Meta          `json:"meta"`
	Stats    PayrollStats        `json:"stats"`
}

type ProcessPayrollResponse struct {
	Payroll      PayrollProcessing `json:"payroll"`
	SalarySlips  []SalarySlip      `json:"salary_slips"`
	SlipsCreated int               `json:"slips_created"`
	SlipsUpdated int               `json:"slips_updated"`
	SlipsRemoved int               `json:"slips_removed"`
}

// ========================================
// SLIP DTOs
// ========================================

type CreateSalarySlipRequest struct {
	PayrollProcessingID int64           `json:"payroll_processing_id"`
	SlipNumber          string          `json:"slip_number,omitempty"` // generated when empty
	EmployeeID          int64           `json:"employee_id"`
	EmployeeName        string          `json:"employee_name"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	TotalEarnings       decimal.Decimal `json:"total_earnings"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	LeaveDeductions     decimal.Decimal `json:"leave_deductions"`
}

type UpdateSalarySlipRequest struct {
	ID                  int64            `json:"-"`
	PayrollProcessingID *int64           `json:"payroll_processing_id,omitempty"`
	SlipNumber          *string          `json:"slip_number,omitempty"`
	EmployeeID          *int64           `json:"employee_id,omitempty"`
	EmployeeName        *string          `json:"employee_name,omitempty"`
	Month               *int             `json:"month,omitempty"`
	Year                *int             `json:"year,omitempty"`
	TotalEarnings       *decimal.Decimal `json:"total_earnings,omitempty"`
	TotalDeductions     *decimal.Decimal `json:"total_deductions,omitempty"`
	LeaveDeductions     *decimal.Decimal `json:"leave_deductions,omitempty"`
}

type SalarySlipFilter struct {
	Search              *string `json:"search,omitempty"`
	PayrollProcessingID *int64  `json:"payroll_processing_id,omitempty"`
	EmployeeID          *int64  `json:"employee_id,omitempty"`
	Month               *int    `json:"month,omitempty"`
	Year                *int    `json:"year,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *SalarySlipFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultSlipListLimit)...)
	errs = append(errs, validatePeriod(f.Month, f.Year)...)

	return errs.OrNil()
}

type SalarySlipStats struct {
	TotalSlips      int             `json:"total_slips"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
}

type ListSalarySlipResponse struct {
	SalarySlips []SalarySlip    `json:"salary_slips"`
	Meta        query.Meta      `json:"meta"`
	Stats       SalarySlipStats `json:"stats"`
}

// ========================================
// STRUCTURE DTOs
// ========================================

// StructureItemRequest omits balance; it is always derived.
type StructureItemRequest struct {
	ComponentName  string          `json:"component_name"`
	ComponentType  string          `json:"component_type"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	Used           decimal.Decimal `json:"used"`
}

type CreateSalaryStructureRequest struct {
	EmployeeID     int64                  `json:"employee_id"`
	EmployeeName   string                 `json:"employee_name"`
	EffectiveFrom  string                 `json:"effective_from"`
	IsActive       string                 `json:"is_active"`
	StructureItems []StructureItemRequest `json:"structure_items"`
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlagOrEmpty("is_active", r.IsActive)...)

	return errs.OrNil()
}

type UpdateSalaryStructureRequest struct {
	ID             int64                  `json:"-"`
	EmployeeID     *int64                 `json:"employee_id,omitempty"`
	EmployeeName   *string                `json:"employee_name,omitempty"`
	EffectiveFrom  *string                `json:"effective_from,omitempty"`
	IsActive       *string                `json:"is_active,omitempty"`
	StructureItems []StructureItemRequest `json:"structure_items,omitempty"`
}

func (r *UpdateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlag("is_active", r.IsActive)...)

	return errs.OrNil()
}

type SalaryStructureFilter struct {
	Search     *string `json:"search,omitempty"`
	EmployeeID *int64  `json:"employee_id,omitempty"`
	IsActive   *string `json:"is_active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *SalaryStructureFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultStructureListLimit)...)
	errs = append(errs, validator.ActiveFlag("is_active", f.IsActive)...)

	return errs.OrNil()
}

type SalaryStructureStats struct {
	TotalStructures  int             `json:"total_structures"`
	ActiveStructures int             `json:"active_structures"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
}

type ListSalaryStructureResponse struct {
	SalaryStructures []SalaryStructure    `json:"salary_structures"`
	Meta             query.Meta           `json:"meta"`
	Stats            SalaryStructureStats `json:"stats"`
}
