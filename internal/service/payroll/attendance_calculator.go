package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/holiday"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

// AttendanceSummary is the fold of one period's attendance days into
// payable figures. Amounts are finalized to 2dp; hour quantities keep
// their exact decimal value.
type AttendanceSummary struct {
	RegularHours decimal.Decimal
	RegularPay   decimal.Decimal

	// AutoOvertimeHours is the excess beyond the daily standard on
	// dates that have no approved overtime record. Dates with an
	// approved record are suppressed here so the two sources never
	// double-count.
	AutoOvertimeHours decimal.Decimal

	NightDiffHours decimal.Decimal

	HolidayHours   decimal.Decimal
	HolidayPremium decimal.Decimal

	LateMinutes   int
	LateDeduction decimal.Decimal

	AbsenceDays      int
	AbsenceDeduction decimal.Decimal
}

// AttendanceCalculator folds raw attendance days into period figures.
type AttendanceCalculator struct {
	cfg config.PayrollConfig
}

func NewAttendanceCalculator(cfg config.PayrollConfig) *AttendanceCalculator {
	return &AttendanceCalculator{cfg: cfg}
}

// Compute accumulates the period's attendance. approvedOvertimeDates
// holds the dates (formatted time.DateOnly) that carry at least one
// approved overtime record; excess attendance hours on those dates are
// not auto-counted as overtime. excusedDates holds dates covered by
// approved leave; those never count as absences even without an
// attendance row, since leave pricing handles them.
func (c *AttendanceCalculator) Compute(
	period payroll.PayPeriod,
	days []attendance.Day,
	approvedOvertimeDates map[string]bool,
	excusedDates map[string]bool,
	calendar holiday.Calendar,
	hourlyRate decimal.Decimal,
) AttendanceSummary {
	standardHours := decimal.NewFromInt(int64(c.cfg.StandardHoursPerDay))

	var summary AttendanceSummary
	summary.RegularHours = decimal.Zero
	summary.AutoOvertimeHours = decimal.Zero
	summary.NightDiffHours = decimal.Zero
	summary.HolidayHours = decimal.Zero

	attended := make(map[string]bool, len(days))

	for _, day := range days {
		dateKey := timeutil.DateOnly(day.Date).Format("2006-01-02")
		if day.Status == attendance.StatusPresent || day.Status == attendance.StatusOnLeave {
			attended[dateKey] = true
		}

		worked := day.HoursWorked()
		if worked.IsZero() {
			continue
		}

		regular := decimal.Min(worked, standardHours)
		summary.RegularHours = summary.RegularHours.Add(regular)

		if worked.GreaterThan(standardHours) && !approvedOvertimeDates[dateKey] {
			summary.AutoOvertimeHours = summary.AutoOvertimeHours.Add(worked.Sub(standardHours))
		}

		summary.NightDiffHours = summary.NightDiffHours.Add(day.NightHours(c.cfg.NightStart, c.cfg.NightEnd))

		if calendar.IsHoliday(day.Date) {
			summary.HolidayHours = summary.HolidayHours.Add(worked)
		}

		summary.LateMinutes += day.MinutesLate(c.cfg.StandardStart, c.cfg.LateGraceMinutes)
	}

	summary.RegularPay = summary.RegularHours.Mul(hourlyRate).Round(2)

	// Holiday hours are already paid at the base rate inside
	// RegularPay; the premium adds (multiplier - 1) on top so the total
	// for a holiday hour comes out at the full multiplier.
	premiumRate := c.cfg.Multipliers.AttendanceHoliday.Sub(decimal.NewFromInt(1))
	summary.HolidayPremium = summary.HolidayHours.Mul(hourlyRate).Mul(premiumRate).Round(2)

	summary.LateDeduction = decimal.NewFromInt(int64(summary.LateMinutes)).
		Div(decimal.NewFromInt(60)).Mul(hourlyRate).Round(2)

	// Absence: working days in the period with neither a presence nor
	// an on-leave mark.
	start, end := timeutil.DateOnly(period.StartDate), timeutil.DateOnly(period.EndDate)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if timeutil.IsWeekend(d) {
			continue
		}
		dateKey := d.Format("2006-01-02")
		if !attended[dateKey] && !excusedDates[dateKey] {
			summary.AbsenceDays++
		}
	}
	summary.AbsenceDeduction = decimal.NewFromInt(int64(summary.AbsenceDays)).
		Mul(standardHours).Mul(hourlyRate).Round(2)

	return summary
}
