package employee

import (
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DefaultListLimit = 10

type CreateEmployeeRequest struct {
	EmployeeCode         string          `json:"employee_code"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	Phone                string          `json:"phone"`
	DepartmentID         int64           `json:"department_id"`
	DepartmentName       string          `json:"department_name"`
	DesignationID        int64           `json:"designation_id"`
	DesignationName      string          `json:"designation_name"`
	ShiftID              int64           `json:"shift_id"`
	ShiftName            string          `json:"shift_name"`
	ReportingManagerID   *int64          `json:"reporting_manager_id,omitempty"`
	ReportingManagerName *string         `json:"reporting_manager_name,omitempty"`
	JoiningDate          string          `json:"joining_date"`
	IsActive             string          `json:"is_active"` // Y or N, empty means Y
	Salary               decimal.Decimal `json:"salary"`
	Currency             string          `json:"currency"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlagOrEmpty("is_active", r.IsActive)...)

	return errs.OrNil()
}

type UpdateEmployeeRequest struct {
	ID                   int64            `json:"-"`
	EmployeeCode         *string          `json:"employee_code,omitempty"`
	Name                 *string          `json:"name,omitempty"`
	Email                *string          `json:"email,omitempty"`
	Phone                *string          `json:"phone,omitempty"`
	DepartmentID         *int64           `json:"department_id,omitempty"`
	DepartmentName       *string          `json:"department_name,omitempty"`
	DesignationID        *int64           `json:"designation_id,omitempty"`
	DesignationName      *string          `json:"designation_name,omitempty"`
	ShiftID              *int64           `json:"shift_id,omitempty"`
	ShiftName            *string          `json:"shift_name,omitempty"`
	ReportingManagerID   *int64           `json:"reporting_manager_id,omitempty"`
	ReportingManagerName *string          `json:"reporting_manager_name,omitempty"`
	JoiningDate          *string          `json:"joining_date,omitempty"`
	IsActive             *string          `json:"is_active,omitempty"`
	Salary               *decimal.Decimal `json:"salary,omitempty"`
	Currency             *string          `json:"currency,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.ActiveFlag("is_active", r.IsActive)...)

	return errs.OrNil()
}

type EmployeeFilter struct {
	// Search & Filter
	Search             *string `json:"search,omitempty"`
	DepartmentID       *int64  `json:"department_id,omitempty"`
	DesignationID      *int64  `json:"designation_id,omitempty"`
	ShiftID            *int64  `json:"shift_id,omitempty"`
	ReportingManagerID *int64  `json:"reporting_manager_id,omitempty"`
	IsActive           *string `json:"is_active,omitempty"`
	JoiningDateFrom    *string `json:"joining_date_from,omitempty"` // YYYY-MM-DD
	JoiningDateTo      *string `json:"joining_date_to,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validator.Pagination(&f.Page, &f.Limit, DefaultListLimit)...)
	errs = append(errs, validator.ActiveFlag("is_active", f.IsActive)...)
	errs = append(errs, validator.OptionalDate("joining_date_from", f.JoiningDateFrom)...)
	errs = append(errs, validator.OptionalDate("joining_date_to", f.JoiningDateTo)...)

	return errs.OrNil()
}

// EmployeeStats feeds the stat cards above the employee list.
type EmployeeStats struct {
	TotalEmployees    int            `json:"total_employees"`
	ActiveEmployees   int            `json:"active_employees"`
	InactiveEmployees int            `json:"inactive_employees"`
	ByDepartment      map[string]int `json:"by_department"`
	ByDesignation     map[string]int `json:"by_designation"`
}

type ListEmployeeResponse struct {
	Employees []Employee    `json:"employees"`
	Meta      query.Meta    `json:"meta"`
	Stats     EmployeeStats `json:"stats"`
}
