package leave

import "errors"

var (
	ErrLeaveApplicationNotFound = errors.New("leave application not found")
	ErrLeaveBalanceNotFound     = errors.New("leave balance not found")
)
