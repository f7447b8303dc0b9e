package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayPeriod is the date range one payroll computation covers. Both
// bounds are inclusive dates.
type PayPeriod struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
}

// Component pairs the quantity of a pay component (hours or days) with
// the money it produced. Every line of the breakdown carries both so a
// payslip can always show the arithmetic.
type Component struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// Result is the complete payroll breakdown for one (employee,
// pay period) pair. Recomputation overwrites the previous row for the
// same key; the computation itself is deterministic, so recomputing
// with unchanged inputs reproduces identical values.
type Result struct {
	ID          string
	EmployeeID  string
	PayPeriodID string
	PeriodStart time.Time
	PeriodEnd   time.Time

	MonthlySalary decimal.Decimal
	HourlyRate    decimal.Decimal

	// Earnings
	Regular   Component
	Overtime  map[string]Component // keyed by overtime category
	NightDiff Component
	Holiday   Component            // attendance-derived holiday premium
	Leave     map[string]Component // paid / sick / maternity credits, in days

	// Deductions
	LateMinutes   int
	LateDeduction decimal.Decimal
	Absence       Component // working days missed, deduction amount
	UnpaidLeave   Component
	ExcessLeave   Component
	Statutory     map[string]decimal.Decimal // keyed by scheme

	// Reportable only: computed accrual, never posted to balances here.
	AccruedVacationDays decimal.Decimal
	AccruedSickDays     decimal.Decimal

	GrossPay decimal.Decimal
	NetPay   decimal.Decimal
}

// TotalStatutory sums the statutory deduction map.
func (r Result) TotalStatutory() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range r.Statutory {
		total = total.Add(amount)
	}
	return total
}
