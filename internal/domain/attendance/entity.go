package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusOnLeave Status = "on_leave"
	StatusAbsent  Status = "absent"
)

// ParseStatus validates a stored status string. Attendance rows come
// from an external collaborator, so an unknown status is data
// corruption, not a default.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusOnLeave, StatusAbsent:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Day is one employee-day of raw time-and-attendance data. TimeIn and
// TimeOut are optional: a missing punch means the day contributes zero
// worked hours, never an error.
type Day struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     *timeutil.ClockTime
	TimeOut    *timeutil.ClockTime
	Status     Status
}

// HoursWorked returns the worked duration in decimal hours. A clock-out
// time-of-day earlier than clock-in is an overnight shift and gains 24
// hours before subtraction. Result is always >= 0.
func (d Day) HoursWorked() decimal.Decimal {
	if d.TimeIn == nil || d.TimeOut == nil {
		return decimal.Zero
	}
	return timeutil.HoursBetween(*d.TimeIn, *d.TimeOut)
}

// MinutesLate returns how many minutes past the standard start time the
// employee clocked in, after the grace period. Zero when on time, when
// the punch is missing, or within grace.
func (d Day) MinutesLate(standardStart timeutil.ClockTime, graceMinutes int) int {
	if d.TimeIn == nil {
		return 0
	}
	late := d.TimeIn.Minutes() - standardStart.Minutes() - graceMinutes
	if late < 0 {
		return 0
	}
	return late
}

// IsLate reports whether the day carries a late clock-in.
func (d Day) IsLate(standardStart timeutil.ClockTime, graceMinutes int) bool {
	return d.MinutesLate(standardStart, graceMinutes) > 0
}

// NightHours returns the hours of the day's worked interval that fall
// inside the nightly window.
func (d Day) NightHours(nightStart, nightEnd timeutil.ClockTime) decimal.Decimal {
	if d.TimeIn == nil || d.TimeOut == nil {
		return decimal.Zero
	}
	return timeutil.NightOverlapHours(*d.TimeIn, *d.TimeOut, nightStart, nightEnd)
}
