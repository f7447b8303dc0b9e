package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// GetApprovedByEmployeePeriod returns approved leave intervals that
	// overlap [startDate, endDate].
	GetApprovedByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Interval, error)

	GetBalances(ctx context.Context, employeeID string) ([]Balance, error)
}
