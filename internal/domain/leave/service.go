package leave

import (
	"context"
)

type LeaveService interface {
	// Application
	GetLeaveApplication(ctx context.Context, id int64) (LeaveApplication, error)
	ListLeaveApplications(ctx context.Context, filter LeaveApplicationFilter) (ListLeaveApplicationResponse, error)
	CreateLeaveApplication(ctx context.Context, req CreateLeaveApplicationRequest) (LeaveApplication, error)
	UpdateLeaveApplication(ctx context.Context, req UpdateLeaveApplicationRequest) (LeaveApplication, error)
	DeleteLeaveApplication(ctx context.Context, id int64) error
	// Balance
	GetLeaveBalance(ctx context.Context, id int64) (LeaveBalance, error)
	ListLeaveBalances(ctx context.Context, filter LeaveBalanceFilter) (ListLeaveBalanceResponse, error)
	CreateLeaveBalance(ctx context.Context, req CreateLeaveBalanceRequest) (LeaveBalance, error)
	UpdateLeaveBalance(ctx context.Context, req UpdateLeaveBalanceRequest) (LeaveBalance, error)
	DeleteLeaveBalance(ctx context.Context, id int64) error
}
