package leave

import "errors"

var (
	ErrUnknownLeaveType = errors.New("leave type matches no known classification")
	ErrInvalidDateRange = errors.New("leave end date before start date")
)
