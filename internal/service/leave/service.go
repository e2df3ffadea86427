package leave

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
)

// LeaveServiceImpl serves applications through RequestService and
// balances through BalanceService.
type LeaveServiceImpl struct {
	*RequestService
	*BalanceService
}

func NewLeaveService(applicationRepo leave.LeaveApplicationRepository, balanceRepo leave.LeaveBalanceRepository, sim latency.Simulator) leave.LeaveService {
	return &LeaveServiceImpl{
		RequestService: NewRequestService(applicationRepo, sim),
		BalanceService: NewBalanceService(balanceRepo, sim),
	}
}
