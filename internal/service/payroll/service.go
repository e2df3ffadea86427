package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	slipRepo      payroll.SalarySlipRepository
	structureRepo payroll.SalaryStructureRepository
	latency       latency.Simulator
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	slipRepo payroll.SalarySlipRepository,
	structureRepo payroll.SalaryStructureRepository,
	sim latency.Simulator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		slipRepo:      slipRepo,
		structureRepo: structureRepo,
		latency:       sim,
	}
}

// ========== PROCESSING ==========

func toPayrollItems(reqs []payroll.PayrollItemRequest) []payroll.PayrollItem {
	items := make([]payroll.PayrollItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, payroll.PayrollItem{
			EmployeeID:      r.EmployeeID,
			EmployeeName:    r.EmployeeName,
			TotalEarnings:   r.TotalEarnings,
			TotalDeductions: r.TotalDeductions,
			LeaveDeductions: r.LeaveDeductions,
		})
	}
	return items
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id int64) (payroll.PayrollProcessing, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return payroll.PayrollProcessing{}, err
	}
	return s.payrollRepo.GetByID(ctx, id)
}

func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollProcessing, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollProcessing{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.PayrollProcessing{}, err
	}

	status := payroll.PayrollStatus(req.Status)
	if status == "" {
		status = payroll.PayrollStatusDraft
	}

	run := payroll.PayrollProcessing{
		Month:   req.Month,
		Year:    req.Year,
		Status:  status,
		Remarks: req.Remarks,
		Items:   toPayrollItems(req.Items),
	}
	run.Recompute()

	created, err := s.payrollRepo.Create(ctx, run)
	if err != nil {
		return payroll.PayrollProcessing{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	slog.InfoContext(ctx, "Payroll created",
		"payroll_id", created.ID,
		"period", fmt.Sprintf("%04d-%02d", created.Year, created.Month),
		"employees", created.TotalEmployees,
	)
	return created, nil
}

func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollProcessing, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollProcessing{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.PayrollProcessing{}, err
	}

	current, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollProcessing{}, err
	}

	utils.Patch(&current.Month, req.Month)
	utils.Patch(&current.Year, req.Year)
	if req.Status != nil {
		current.Status = payroll.PayrollStatus(*req.Status)
	}
	utils.PatchPtr(&current.ProcessedDate, req.ProcessedDate)
	utils.Patch(&current.Remarks, req.Remarks)
	if req.Items != nil {
		current.Items = toPayrollItems(req.Items)
	}
	current.Recompute()

	updated, err := s.payrollRepo.Update(ctx, current)
	if err != nil {
		return payroll.PayrollProcessing{}, err
	}

	slog.InfoContext(ctx, "Payroll updated", "payroll_id", updated.ID, "status", updated.Status)
	return updated, nil
}

func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}

	var slipsRemoved int
	err := database.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.payrollRepo.Delete(ctx, id); err != nil {
			return err
		}
		n, err := s.slipRepo.DeleteForRun(ctx, id, nil)
		if err != nil {
			return fmt.Errorf("failed to delete salary slips: %w", err)
		}
		slipsRemoved = n
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Payroll deleted", "payroll_id", id, "slips_removed", slipsRemoved)
	return nil
}

// ProcessPayroll implements payroll.PayrollService. Only Draft and
// Processed runs qualify. Slips already issued for the run keep their id
// and slip number and have their amounts refreshed; slips of employees no
// longer in the run are removed.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, id int64) (payroll.ProcessPayrollResponse, error) {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	var resp payroll.ProcessPayrollResponse
	err := database.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		run, err := s.payrollRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if run.Status != payroll.PayrollStatusDraft && run.Status != payroll.PayrollStatusProcessed {
			return fmt.Errorf("payroll %d is %s: %w", run.ID, run.Status, payroll.ErrPayrollNotProcessable)
		}

		processed := s.db.Now().Format(record.DateLayout)
		run.Status = payroll.PayrollStatusProcessed
		run.ProcessedDate = &processed
		run.Recompute()

		run, err = s.payrollRepo.Update(ctx, run)
		if err != nil {
			return fmt.Errorf("failed to update payroll: %w", err)
		}

		slips := make([]payroll.SalarySlip, 0, len(run.Items))
		for _, item := range run.Items {
			incoming := payroll.SalarySlip{
				PayrollProcessingID: run.ID,
				SlipNumber:          uuid.NewString(),
				EmployeeID:          item.EmployeeID,
				EmployeeName:        item.EmployeeName,
				Month:               run.Month,
				Year:                run.Year,
				TotalEarnings:       item.TotalEarnings,
				TotalDeductions:     item.TotalDeductions,
				LeaveDeductions:     item.LeaveDeductions,
			}
			incoming.Recompute()

			merge := func(existing payroll.SalarySlip) payroll.SalarySlip {
				incoming.Base = existing.Base
				incoming.SlipNumber = existing.SlipNumber
				return incoming
			}

			slip, created, err := s.slipRepo.UpsertForRun(ctx, incoming, merge)
			if err != nil {
				return fmt.Errorf("failed to write salary slip for employee %d: %w", item.EmployeeID, err)
			}
			if created {
				resp.SlipsCreated++
			} else {
				resp.SlipsUpdated++
			}
			slips = append(slips, slip)
		}

		inRun := make(map[int64]bool, len(run.Items))
		for _, item := range run.Items {
			inRun[item.EmployeeID] = true
		}
		removed, err := s.slipRepo.DeleteForRun(ctx, run.ID, func(slip payroll.SalarySlip) bool {
			return inRun[slip.EmployeeID]
		})
		if err != nil {
			return fmt.Errorf("failed to remove stale salary slips: %w", err)
		}

		resp.Payroll = run
		resp.SalarySlips = slips
		resp.SlipsRemoved = removed
		return nil
	})
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	slog.InfoContext(ctx, "Payroll processed",
		"payroll_id", id,
		"slips_created", resp.SlipsCreated,
		"slips_updated", resp.SlipsUpdated,
		"slips_removed", resp.SlipsRemoved,
	)
	return resp, nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	all, err := s.payrollRepo.List(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payrolls: %w", err)
	}

	filtered := FilterPayrolls(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return payroll.ListPayrollResponse{
		Payrolls: page.Items,
		Meta:     page.Meta,
		Stats:    PayrollStats(filtered),
	}, nil
}

func FilterPayrolls(all []payroll.PayrollProcessing, filter payroll.PayrollFilter) []payroll.PayrollProcessing {
	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(p payroll.PayrollProcessing) string { return p.Remarks },
			func(p payroll.PayrollProcessing) string { return string(p.Status) },
		),
		query.Equals(filter.Status, func(p payroll.PayrollProcessing) string { return string(p.Status) }),
		query.Equals(filter.Month, func(p payroll.PayrollProcessing) int { return p.Month }),
		query.Equals(filter.Year, func(p payroll.PayrollProcessing) int { return p.Year }),
	)
}

func PayrollStats(records []payroll.PayrollProcessing) payroll.PayrollStats {
	return payroll.PayrollStats{
		TotalRuns:      len(records),
		ByStatus:       query.GroupCount(records, func(p payroll.PayrollProcessing) string { return string(p.Status) }),
		TotalNetSalary: query.SumDecimal(records, func(p payroll.PayrollProcessing) decimal.Decimal { return p.TotalNetSalary }),
		TotalEmployees: int(query.Sum(records, func(p payroll.PayrollProcessing) float64 { return float64(p.TotalEmployees) })),
	}
}
