package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// ========== SALARY STRUCTURES ==========

func toStructureItems(reqs []payroll.StructureItemRequest) []payroll.StructureItem {
	items := make([]payroll.StructureItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, payroll.StructureItem{
			ComponentName: r.ComponentName,
			ComponentType: payroll.ComponentType(r.ComponentType),
			Allocation: record.Allocation{
				TotalAllocated: r.TotalAllocated,
				Used:           r.Used,
			},
		})
	}
	return items
}

func (s *PayrollServiceImpl) GetSalaryStructure(ctx context.Context, id int64) (payroll.SalaryStructure, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return payroll.SalaryStructure{}, err
	}
	return s.structureRepo.GetByID(ctx, id)
}

func (s *PayrollServiceImpl) CreateSalaryStructure(ctx context.Context, req payroll.CreateSalaryStructureRequest) (payroll.SalaryStructure, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructure{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.SalaryStructure{}, err
	}

	structure := payroll.SalaryStructure{
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		EffectiveFrom:  req.EffectiveFrom,
		IsActive:       record.FlagOrActive(req.IsActive),
		StructureItems: toStructureItems(req.StructureItems),
	}
	structure.Recompute()

	created, err := s.structureRepo.Create(ctx, structure)
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	slog.InfoContext(ctx, "Salary structure created", "salary_structure_id", created.ID, "employee_id", created.EmployeeID)
	return created, nil
}

func (s *PayrollServiceImpl) UpdateSalaryStructure(ctx context.Context, req payroll.UpdateSalaryStructureRequest) (payroll.SalaryStructure, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructure{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return payroll.SalaryStructure{}, err
	}

	current, err := s.structureRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.SalaryStructure{}, err
	}

	utils.Patch(&current.EmployeeID, req.EmployeeID)
	utils.Patch(&current.EmployeeName, req.EmployeeName)
	utils.Patch(&current.EffectiveFrom, req.EffectiveFrom)
	if req.IsActive != nil {
		current.IsActive = record.FlagOrActive(*req.IsActive)
	}
	if req.StructureItems != nil {
		current.StructureItems = toStructureItems(req.StructureItems)
	}
	current.Recompute()

	return s.structureRepo.Update(ctx, current)
}

func (s *PayrollServiceImpl) DeleteSalaryStructure(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}
	return s.structureRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) ListSalaryStructures(ctx context.Context, filter payroll.SalaryStructureFilter) (payroll.ListSalaryStructureResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSalaryStructureResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return payroll.ListSalaryStructureResponse{}, err
	}

	all, err := s.structureRepo.List(ctx)
	if err != nil {
		return payroll.ListSalaryStructureResponse{}, fmt.Errorf("failed to list salary structures: %w", err)
	}

	filtered := query.Filter(all,
		query.Search(utils.Deref(filter.Search), func(p payroll.SalaryStructure) string { return p.EmployeeName }),
		query.Equals(filter.EmployeeID, func(p payroll.SalaryStructure) int64 { return p.EmployeeID }),
		query.Equals(filter.IsActive, func(p payroll.SalaryStructure) string { return string(p.IsActive) }),
	)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return payroll.ListSalaryStructureResponse{
		SalaryStructures: page.Items,
		Meta:             page.Meta,
		Stats:            StructureStats(filtered),
	}, nil
}

func StructureStats(records []payroll.SalaryStructure) payroll.SalaryStructureStats {
	var items []payroll.StructureItem
	for _, r := range records {
		items = append(items, r.StructureItems...)
	}
	ofType := func(t payroll.ComponentType) func(payroll.StructureItem) bool {
		return func(i payroll.StructureItem) bool { return i.ComponentType == t }
	}
	allocated := func(i payroll.StructureItem) decimal.Decimal { return i.TotalAllocated }

	return payroll.SalaryStructureStats{
		TotalStructures:  len(records),
		ActiveStructures: query.Count(records, func(p payroll.SalaryStructure) bool { return p.IsActive == record.Active }),
		TotalEarnings:    query.SumDecimal(query.Filter(items, ofType(payroll.ComponentTypeEarning)), allocated),
		TotalDeductions:  query.SumDecimal(query.Filter(items, ofType(payroll.ComponentTypeDeduction)), allocated),
	}
}
