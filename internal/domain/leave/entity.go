package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

// Interval is one approved leave request. EndDate is inclusive.
type Interval struct {
	ID         string
	EmployeeID string
	TypeName   string
	StartDate  time.Time
	EndDate    time.Time
	Status     approval.Status
}

// Days returns the inclusive calendar-day span of the leave. Leave-day
// counting never excludes weekends; that filtering belongs to absence
// deduction, not leave.
func (i Interval) Days() int {
	return timeutil.InclusiveDays(i.StartDate, i.EndDate)
}

// Balance is the remaining entitlement for one leave type. A negative
// RemainingDays means the employee used more than they earned and the
// overage is deducted from pay.
type Balance struct {
	EmployeeID    string
	TypeName      string
	RemainingDays decimal.Decimal
}
