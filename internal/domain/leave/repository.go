package leave

import "context"

type LeaveApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveApplication, error)
	List(ctx context.Context) ([]LeaveApplication, error)
	Create(ctx context.Context, application LeaveApplication) (LeaveApplication, error)
	Update(ctx context.Context, application LeaveApplication) (LeaveApplication, error)
	Delete(ctx context.Context, id int64) error
}

type LeaveBalanceRepository interface {
	GetByID(ctx context.Context, id int64) (LeaveBalance, error)
	List(ctx context.Context) ([]LeaveBalance, error)
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	Update(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	Delete(ctx context.Context, id int64) error
}
