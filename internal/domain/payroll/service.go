package payroll

import (
	"context"
)

type PayrollService interface {
	// Processing
	GetPayroll(ctx context.Context, id int64) (PayrollProcessing, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (PayrollProcessing, error)
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollProcessing, error)
	DeletePayroll(ctx context.Context, id int64) error

	// ProcessPayroll marks the run Processed and writes one salary slip per
	// item in a single store transaction
	ProcessPayroll(ctx context.Context, id int64) (ProcessPayrollResponse, error)

	// Slip
	GetSalarySlip(ctx context.Context, id int64) (SalarySlip, error)
	ListSalarySlips(ctx context.Context, filter SalarySlipFilter) (ListSalarySlipResponse, error)
	CreateSalarySlip(ctx context.Context, req CreateSalarySlipRequest) (SalarySlip, error)
	UpdateSalarySlip(ctx context.Context, req UpdateSalarySlipRequest) (SalarySlip, error)
	DeleteSalarySlip(ctx context.Context, id int64) error

	// Structure
	GetSalaryStructure(ctx context.Context, id int64) (SalaryStructure, error)
	ListSalaryStructures(ctx context.Context, filter SalaryStructureFilter) (ListSalaryStructureResponse, error)
	CreateSalaryStructure(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructure, error)
	UpdateSalaryStructure(ctx context.Context, req UpdateSalaryStructureRequest) (SalaryStructure, error)
	DeleteSalaryStructure(ctx context.Context, id int64) error
}
