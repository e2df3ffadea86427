package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll not found")
	ErrSalarySlipNotFound      = errors.New("salary slip not found")
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrPayrollNotProcessable   = errors.New("payroll cannot be processed in its current status")
)
