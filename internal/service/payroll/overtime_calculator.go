package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/holiday"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

// CategoryTotal is the hours and pay accumulated in one overtime
// category bucket.
type CategoryTotal struct {
	Hours  decimal.Decimal
	Amount decimal.Decimal
}

// OvertimeSummary is the per-category breakdown of a period's approved
// overtime plus the night hours that fell inside those intervals.
type OvertimeSummary struct {
	ByCategory     map[overtime.Category]CategoryTotal
	NightDiffHours decimal.Decimal
	TotalHours     decimal.Decimal
	TotalPay       decimal.Decimal
}

// OvertimeCalculator prices approved overtime intervals.
type OvertimeCalculator struct {
	cfg config.PayrollConfig
}

func NewOvertimeCalculator(cfg config.PayrollConfig) *OvertimeCalculator {
	return &OvertimeCalculator{cfg: cfg}
}

// Compute buckets each approved interval into exactly one category and
// applies that category's multiplier. Classification precedence:
// holiday-calendar date, then weekend, then the submitted special tag,
// then regular. Night hours inside the intervals are accumulated for
// the shared night-differential bucket, not priced here.
func (c *OvertimeCalculator) Compute(
	intervals []overtime.Interval,
	calendar holiday.Calendar,
	hourlyRate decimal.Decimal,
) OvertimeSummary {
	summary := OvertimeSummary{
		ByCategory:     make(map[overtime.Category]CategoryTotal),
		NightDiffHours: decimal.Zero,
		TotalHours:     decimal.Zero,
		TotalPay:       decimal.Zero,
	}

	for _, iv := range intervals {
		if !iv.Status.IsApproved() {
			continue
		}

		hours := iv.Hours()
		if hours.IsZero() {
			continue
		}

		category := c.classify(iv, calendar)
		pay := c.price(iv, category, hours, hourlyRate)

		total := summary.ByCategory[category]
		total.Hours = total.Hours.Add(hours)
		total.Amount = total.Amount.Add(pay)
		summary.ByCategory[category] = total

		summary.TotalHours = summary.TotalHours.Add(hours)
		summary.TotalPay = summary.TotalPay.Add(pay)

		summary.NightDiffHours = summary.NightDiffHours.Add(
			timeutil.NightOverlapHours(iv.Start, iv.End, c.cfg.NightStart, c.cfg.NightEnd))
	}

	return summary
}

func (c *OvertimeCalculator) classify(iv overtime.Interval, calendar holiday.Calendar) overtime.Category {
	switch {
	case calendar.IsHoliday(iv.Date):
		return overtime.CategoryHoliday
	case timeutil.IsWeekend(iv.Date):
		return overtime.CategoryWeekend
	case iv.Category == overtime.CategorySpecial:
		return overtime.CategorySpecial
	default:
		return overtime.CategoryRegular
	}
}

func (c *OvertimeCalculator) price(iv overtime.Interval, category overtime.Category, hours, hourlyRate decimal.Decimal) decimal.Decimal {
	// A special record with an explicit override rate is paid at that
	// rate directly, no multiplier.
	if category == overtime.CategorySpecial && iv.OverrideRate != nil {
		return hours.Mul(*iv.OverrideRate).Round(2)
	}

	return hours.Mul(hourlyRate).Mul(c.multiplier(category)).Round(2)
}

func (c *OvertimeCalculator) multiplier(category overtime.Category) decimal.Decimal {
	switch category {
	case overtime.CategoryHoliday:
		return c.cfg.Multipliers.Holiday
	case overtime.CategoryWeekend:
		return c.cfg.Multipliers.Weekend
	default:
		// Special without an override, night, and regular all fall back
		// to the regular multiplier.
		return c.cfg.Multipliers.Regular
	}
}
