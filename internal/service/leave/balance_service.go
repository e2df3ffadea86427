package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type BalanceService struct {
	leave.LeaveBalanceRepository
	latency latency.Simulator
}

func NewBalanceService(balanceRepo leave.LeaveBalanceRepository, sim latency.Simulator) *BalanceService {
	return &BalanceService{
		LeaveBalanceRepository: balanceRepo,
		latency:                sim,
	}
}

func toItems(reqs []leave.LeaveTypeItemRequest) []leave.LeaveTypeItem {
	items := make([]leave.LeaveTypeItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, leave.LeaveTypeItem{
			LeaveTypeID:   r.LeaveTypeID,
			LeaveTypeName: r.LeaveTypeName,
			Allocation: record.Allocation{
				TotalAllocated: r.TotalAllocated,
				Used:           r.Used,
			},
		})
	}
	return items
}

func (b *BalanceService) GetLeaveBalance(ctx context.Context, id int64) (leave.LeaveBalance, error) {
	if err := b.latency.WaitFetch(ctx); err != nil {
		return leave.LeaveBalance{}, err
	}
	return b.LeaveBalanceRepository.GetByID(ctx, id)
}

func (b *BalanceService) CreateLeaveBalance(ctx context.Context, req leave.CreateLeaveBalanceRequest) (leave.LeaveBalance, error) {
	if err := b.latency.WaitMutation(ctx); err != nil {
		return leave.LeaveBalance{}, err
	}

	balance := leave.LeaveBalance{
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		Year:           req.Year,
		LeaveTypeItems: toItems(req.LeaveTypeItems),
	}
	balance.Recompute()

	created, err := b.LeaveBalanceRepository.Create(ctx, balance)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	slog.InfoContext(ctx, "Leave balance created", "leave_balance_id", created.ID, "employee_id", created.EmployeeID, "year", created.Year)
	return created, nil
}

func (b *BalanceService) UpdateLeaveBalance(ctx context.Context, req leave.UpdateLeaveBalanceRequest) (leave.LeaveBalance, error) {
	if err := b.latency.WaitMutation(ctx); err != nil {
		return leave.LeaveBalance{}, err
	}

	current, err := b.LeaveBalanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	utils.Patch(&current.EmployeeID, req.EmployeeID)
	utils.Patch(&current.EmployeeName, req.EmployeeName)
	utils.Patch(&current.Year, req.Year)
	if req.LeaveTypeItems != nil {
		current.LeaveTypeItems = toItems(req.LeaveTypeItems)
	}
	current.Recompute()

	return b.LeaveBalanceRepository.Update(ctx, current)
}

func (b *BalanceService) DeleteLeaveBalance(ctx context.Context, id int64) error {
	if err := b.latency.WaitMutation(ctx); err != nil {
		return err
	}
	return b.LeaveBalanceRepository.Delete(ctx, id)
}

func (b *BalanceService) ListLeaveBalances(ctx context.Context, filter leave.LeaveBalanceFilter) (leave.ListLeaveBalanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveBalanceResponse{}, err
	}
	if err := b.latency.WaitList(ctx); err != nil {
		return leave.ListLeaveBalanceResponse{}, err
	}

	all, err := b.LeaveBalanceRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveBalanceResponse{}, fmt.Errorf("failed to list leave balances: %w", err)
	}

	filtered := query.Filter(all,
		query.Search(utils.Deref(filter.Search), func(l leave.LeaveBalance) string { return l.EmployeeName }),
		query.Equals(filter.EmployeeID, func(l leave.LeaveBalance) int64 { return l.EmployeeID }),
		query.Equals(filter.Year, func(l leave.LeaveBalance) int { return l.Year }),
	)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return leave.ListLeaveBalanceResponse{
		LeaveBalances: page.Items,
		Meta:          page.Meta,
		Stats:         BalanceStats(filtered),
	}, nil
}

func BalanceStats(records []leave.LeaveBalance) leave.LeaveBalanceStats {
	var items []leave.LeaveTypeItem
	for _, r := range records {
		items = append(items, r.LeaveTypeItems...)
	}
	return leave.LeaveBalanceStats{
		TotalRecords:   len(records),
		TotalAllocated: query.SumDecimal(items, func(i leave.LeaveTypeItem) decimal.Decimal { return i.TotalAllocated }),
		TotalUsed:      query.SumDecimal(items, func(i leave.LeaveTypeItem) decimal.Decimal { return i.Used }),
		TotalBalance:   query.SumDecimal(items, func(i leave.LeaveTypeItem) decimal.Decimal { return i.Balance }),
	}
}
