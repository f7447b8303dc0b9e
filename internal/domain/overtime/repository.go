package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	// GetApprovedByEmployeePeriod returns only approved intervals with
	// dates inside [startDate, endDate].
	GetApprovedByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Interval, error)

	// GetByEmployeePeriod returns intervals of every status, used by
	// submission-time validation.
	GetByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Interval, error)

	Create(ctx context.Context, interval Interval) (Interval, error)

	// InTransaction runs fn atomically; repository calls made with the
	// context fn receives join the same transaction.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
