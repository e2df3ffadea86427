package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ========== SALARY SLIPS ==========

func (s *PayrollServiceImpl) GetSalarySlip(ctx context.Context, id int64) (payroll.SalarySlip, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return payroll.SalarySlip{}, err
	}
	return s.slipRepo.GetByID(ctx, id)
}

func (s *PayrollServiceImpl) CreateSalarySlip(ctx context.Context, req payroll.CreateSalarySlipRequest) (payroll.SalarySlip, error) {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.SalarySlip{}, err
	}

	slipNumber := req.SlipNumber
	if slipNumber == "" {
		slipNumber = uuid.NewString()
	}

	slip := payroll.SalarySlip{
		PayrollProcessingID: req.PayrollProcessingID,
		SlipNumber:          slipNumber,
		EmployeeID:          req.EmployeeID,
		EmployeeName:        req.EmployeeName,
		Month:               req.Month,
		Year:                req.Year,
		TotalEarnings:       req.TotalEarnings,
		TotalDeductions:     req.TotalDeductions,
		LeaveDeductions:     req.LeaveDeductions,
	}
	slip.Recompute()

	created, err := s.slipRepo.Create(ctx, slip)
	if err != nil {
		return payroll.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	slog.InfoContext(ctx, "Salary slip created", "salary_slip_id", created.ID, "slip_number", created.SlipNumber)
	return created, nil
}

func (s *PayrollServiceImpl) UpdateSalarySlip(ctx context.Context, req payroll.UpdateSalarySlipRequest) (payroll.SalarySlip, error) {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.SalarySlip{}, err
	}

	current, err := s.slipRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.SalarySlip{}, err
	}

	utils.Patch(&current.PayrollProcessingID, req.PayrollProcessingID)
	utils.Patch(&current.SlipNumber, req.SlipNumber)
	utils.Patch(&current.EmployeeID, req.EmployeeID)
	utils.Patch(&current.EmployeeName, req.EmployeeName)
	utils.Patch(&current.Month, req.Month)
	utils.Patch(&current.Year, req.Year)
	utils.Patch(&current.TotalEarnings, req.TotalEarnings)
	utils.Patch(&current.TotalDeductions, req.TotalDeductions)
	utils.Patch(&current.LeaveDeductions, req.LeaveDeductions)
	current.Recompute()

	return s.slipRepo.Update(ctx, current)
}

func (s *PayrollServiceImpl) DeleteSalarySlip(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}
	return s.slipRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) ListSalarySlips(ctx context.Context, filter payroll.SalarySlipFilter) (payroll.ListSalarySlipResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSalarySlipResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return payroll.ListSalarySlipResponse{}, err
	}

	all, err := s.slipRepo.List(ctx)
	if err != nil {
		return payroll.ListSalarySlipResponse{}, fmt.Errorf("failed to list salary slips: %w", err)
	}

	filtered := query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(p payroll.SalarySlip) string { return p.EmployeeName },
			func(p payroll.SalarySlip) string { return p.SlipNumber },
		),
		query.Equals(filter.PayrollProcessingID, func(p payroll.SalarySlip) int64 { return p.PayrollProcessingID }),
		query.Equals(filter.EmployeeID, func(p payroll.SalarySlip) int64 { return p.EmployeeID }),
		query.Equals(filter.Month, func(p payroll.SalarySlip) int { return p.Month }),
		query.Equals(filter.Year, func(p payroll.SalarySlip) int { return p.Year }),
	)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return payroll.ListSalarySlipResponse{
		SalarySlips: page.Items,
		Meta:        page.Meta,
		Stats: payroll.SalarySlipStats{
			TotalSlips:      len(filtered),
			TotalEarnings:   query.SumDecimal(filtered, func(p payroll.SalarySlip) decimal.Decimal { return p.TotalEarnings }),
			TotalDeductions: query.SumDecimal(filtered, func(p payroll.SalarySlip) decimal.Decimal { return p.TotalDeductions.Add(p.LeaveDeductions) }),
			TotalNetSalary:  query.SumDecimal(filtered, func(p payroll.SalarySlip) decimal.Decimal { return p.NetSalary }),
		},
	}, nil
}
