package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	crud[payroll.PayrollProcessing, *payroll.PayrollProcessing]
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{
		crud: newCrud[payroll.PayrollProcessing, *payroll.PayrollProcessing](db, payroll.ErrPayrollNotFound),
	}
}

type salarySlipRepositoryImpl struct {
	crud[payroll.SalarySlip, *payroll.SalarySlip]
}

func NewSalarySlipRepository(db *database.DB) payroll.SalarySlipRepository {
	return &salarySlipRepositoryImpl{
		crud: newCrud[payroll.SalarySlip, *payroll.SalarySlip](db, payroll.ErrSalarySlipNotFound),
	}
}

// UpsertForRun implements payroll.SalarySlipRepository.
func (r *salarySlipRepositoryImpl) UpsertForRun(ctx context.Context, incoming payroll.SalarySlip, merge func(existing payroll.SalarySlip) payroll.SalarySlip) (payroll.SalarySlip, bool, error) {
	sameSlip := func(s payroll.SalarySlip) bool {
		return s.PayrollProcessingID == incoming.PayrollProcessingID && s.EmployeeID == incoming.EmployeeID
	}
	stored, created := r.table.Upsert(ctx, sameSlip, incoming, merge)
	return stored, created, nil
}

// DeleteForRun implements payroll.SalarySlipRepository.
func (r *salarySlipRepositoryImpl) DeleteForRun(ctx context.Context, runID int64, keep func(payroll.SalarySlip) bool) (int, error) {
	removed := r.table.DeleteWhere(ctx, func(s payroll.SalarySlip) bool {
		return s.PayrollProcessingID == runID && (keep == nil || !keep(s))
	})
	return removed, nil
}

type salaryStructureRepositoryImpl struct {
	crud[payroll.SalaryStructure, *payroll.SalaryStructure]
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{
		crud: newCrud[payroll.SalaryStructure, *payroll.SalaryStructure](db, payroll.ErrSalaryStructureNotFound),
	}
}
