package memory

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type leaveApplicationRepositoryImpl struct {
	crud[leave.LeaveApplication, *leave.LeaveApplication]
}

func NewLeaveApplicationRepository(db *database.DB) leave.LeaveApplicationRepository {
	return &leaveApplicationRepositoryImpl{
		crud: newCrud[leave.LeaveApplication, *leave.LeaveApplication](db, leave.ErrLeaveApplicationNotFound),
	}
}

type leaveBalanceRepositoryImpl struct {
	crud[leave.LeaveBalance, *leave.LeaveBalance]
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{
		crud: newCrud[leave.LeaveBalance, *leave.LeaveBalance](db, leave.ErrLeaveBalanceNotFound),
	}
}
