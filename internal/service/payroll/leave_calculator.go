package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

// ClassTotal is the days and money accumulated for one leave pay class.
type ClassTotal struct {
	Days   decimal.Decimal
	Amount decimal.Decimal
}

// LeaveSummary is the pay effect of a period's approved leave: credits
// for the paid classes, deductions for unpaid leave and for days taken
// beyond the remaining balance, plus the period's entitlement accrual.
type LeaveSummary struct {
	Credits map[leave.Class]ClassTotal

	UnpaidDays      decimal.Decimal
	UnpaidDeduction decimal.Decimal

	ExcessDays      decimal.Decimal
	ExcessDeduction decimal.Decimal

	AccruedVacationDays decimal.Decimal
	AccruedSickDays     decimal.Decimal
}

// LeaveCalculator turns approved leave intervals into pay adjustments.
type LeaveCalculator struct {
	cfg config.PayrollConfig
}

func NewLeaveCalculator(cfg config.PayrollConfig) *LeaveCalculator {
	return &LeaveCalculator{cfg: cfg}
}

// Compute classifies every approved interval overlapping the period and
// prices the portion that falls inside it. An interval whose type name
// cannot be classified fails the whole computation; a misread leave
// type must never silently change pay.
func (c *LeaveCalculator) Compute(
	period payroll.PayPeriod,
	intervals []leave.Interval,
	balances []leave.Balance,
	hourlyRate decimal.Decimal,
) (LeaveSummary, error) {
	summary := LeaveSummary{
		Credits:         make(map[leave.Class]ClassTotal),
		UnpaidDays:      decimal.Zero,
		UnpaidDeduction: decimal.Zero,
		ExcessDays:      decimal.Zero,
		ExcessDeduction: decimal.Zero,
	}

	dayValue := decimal.NewFromInt(int64(c.cfg.StandardHoursPerDay)).Mul(hourlyRate)

	for _, iv := range intervals {
		if !iv.Status.IsApproved() {
			continue
		}

		// A zero-day span means the end date precedes the start date;
		// that record is corrupt and must not silently price as nothing.
		if iv.Days() == 0 {
			return LeaveSummary{}, fmt.Errorf("leave %s: %w", iv.ID, leave.ErrInvalidDateRange)
		}

		days := overlapDays(iv, period)
		if days == 0 {
			continue
		}

		class, err := leave.Classify(iv.TypeName)
		if err != nil {
			return LeaveSummary{}, fmt.Errorf("leave type %q: %w", iv.TypeName, err)
		}

		dayCount := decimal.NewFromInt(int64(days))

		switch class {
		case leave.ClassUnpaid:
			summary.UnpaidDays = summary.UnpaidDays.Add(dayCount)
			summary.UnpaidDeduction = summary.UnpaidDeduction.Add(dayCount.Mul(dayValue)).Round(2)
		case leave.ClassMaternity:
			amount := dayCount.Mul(dayValue).Mul(c.cfg.MaternityPayFraction).Round(2)
			c.credit(&summary, class, dayCount, amount)
		default:
			// Paid and sick classes are credited at the full day value.
			// Sick is kept in its own bucket so the payslip can report it,
			// but it is never paid a second time under the paid class.
			amount := dayCount.Mul(dayValue).Round(2)
			c.credit(&summary, class, dayCount, amount)
		}
	}

	// Days taken beyond the remaining entitlement are clawed back. A
	// negative balance is the overage already posted by the leave
	// service; the engine only prices it.
	for _, b := range balances {
		if !b.RemainingDays.IsNegative() {
			continue
		}
		overage := b.RemainingDays.Neg()
		summary.ExcessDays = summary.ExcessDays.Add(overage)
	}
	summary.ExcessDeduction = summary.ExcessDays.Mul(dayValue).Round(2)

	summary.AccruedVacationDays = c.cfg.MonthlyVacationAccrualDays
	summary.AccruedSickDays = c.cfg.MonthlySickAccrualDays

	return summary, nil
}

func (c *LeaveCalculator) credit(summary *LeaveSummary, class leave.Class, days, amount decimal.Decimal) {
	total := summary.Credits[class]
	total.Days = total.Days.Add(days)
	total.Amount = total.Amount.Add(amount)
	summary.Credits[class] = total
}

// overlapDays counts the inclusive days of the interval that fall
// inside the pay period. Intervals straddling a period boundary only
// charge the days inside it; the rest belongs to the adjacent period.
func overlapDays(iv leave.Interval, period payroll.PayPeriod) int {
	start := timeutil.DateOnly(iv.StartDate)
	end := timeutil.DateOnly(iv.EndDate)
	periodStart := timeutil.DateOnly(period.StartDate)
	periodEnd := timeutil.DateOnly(period.EndDate)

	if start.Before(periodStart) {
		start = periodStart
	}
	if end.After(periodEnd) {
		end = periodEnd
	}
	if end.Before(start) {
		return 0
	}
	return timeutil.InclusiveDays(start, end)
}
