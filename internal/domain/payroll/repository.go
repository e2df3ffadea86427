package payroll

import "context"

type PayrollRepository interface {
	GetByID(ctx context.Context, id int64) (PayrollProcessing, error)
	List(ctx context.Context) ([]PayrollProcessing, error)
	Create(ctx context.Context, run PayrollProcessing) (PayrollProcessing, error)
	Update(ctx context.Context, run PayrollProcessing) (PayrollProcessing, error)
	Delete(ctx context.Context, id int64) error
}

type SalarySlipRepository interface {
	GetByID(ctx context.Context, id int64) (SalarySlip, error)
	List(ctx context.Context) ([]SalarySlip, error)
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	Update(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	Delete(ctx context.Context, id int64) error

	// UpsertForRun stores incoming unless a slip already exists for its
	// (payroll_processing_id, employee_id), in which case that slip is
	// replaced with merge(existing). The bool reports an insert.
	UpsertForRun(ctx context.Context, incoming SalarySlip, merge func(existing SalarySlip) SalarySlip) (SalarySlip, bool, error)

	// DeleteForRun removes the run's slips for which keep returns false.
	// A nil keep removes them all.
	DeleteForRun(ctx context.Context, runID int64, keep func(SalarySlip) bool) (int, error)
}

type SalaryStructureRepository interface {
	GetByID(ctx context.Context, id int64) (SalaryStructure, error)
	List(ctx context.Context) ([]SalaryStructure, error)
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	Update(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	Delete(ctx context.Context, id int64) error
}
