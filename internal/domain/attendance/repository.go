package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeePeriod returns the attendance days for the employee
	// with dates inside [startDate, endDate], both inclusive.
	GetByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Day, error)
}
