package employee

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/shopspring/decimal"
)

type Employee struct {
	record.Base
	EmployeeCode         string            `json:"employee_code"`
	Name                 string            `json:"name"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	DepartmentID         int64             `json:"department_id"`
	DepartmentName       string            `json:"department_name"`
	DesignationID        int64             `json:"designation_id"`
	DesignationName      string            `json:"designation_name"`
	ShiftID              int64             `json:"shift_id"`
	ShiftName            string            `json:"shift_name"`
	ReportingManagerID   *int64            `json:"reporting_manager_id,omitempty"`
	ReportingManagerName *string           `json:"reporting_manager_name,omitempty"`
	JoiningDate          string            `json:"joining_date"` // YYYY-MM-DD
	IsActive             record.ActiveFlag `json:"is_active"`
	Salary               decimal.Decimal   `json:"salary"`
	Currency             string            `json:"currency"`
}

// Clone implements database.Cloner.
func (e Employee) Clone() Employee {
	e.ReportingManagerID = record.ClonePtr(e.ReportingManagerID)
	e.ReportingManagerName = record.ClonePtr(e.ReportingManagerName)
	return e
}
