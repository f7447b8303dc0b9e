package timeutil

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

var sixty = decimal.NewFromInt(60)

// ClockTime is a time of day expressed as minutes since midnight.
// It carries no date: overnight spans are resolved by the interval
// functions below, not by the value itself.
type ClockTime int

// ParseClock parses a "HH:MM" string (24-hour clock).
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// MustParseClock is ParseClock for compiled-in defaults.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Minutes() int {
	return int(c)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// HoursBetween returns the duration of [start, end) in decimal hours.
// An end time-of-day strictly before start is treated as spanning
// midnight. start == end yields zero.
func HoursBetween(start, end ClockTime) decimal.Decimal {
	s, e := start.Minutes(), end.Minutes()
	if e < s {
		e += minutesPerDay
	}
	return decimal.NewFromInt(int64(e - s)).Div(sixty)
}

// NightOverlapHours returns the hours of the work interval [start, end)
// that fall inside the nightly window [nightStart, nightEnd). Both the
// interval and the window may wrap past midnight. The window repeats
// every day, so an interval crossing midnight can touch the window of
// two consecutive days. Equal window bounds mean an empty window, not a
// 24-hour one.
func NightOverlapHours(start, end, nightStart, nightEnd ClockTime) decimal.Decimal {
	s, e := start.Minutes(), end.Minutes()
	if e < s {
		e += minutesPerDay
	}
	if e == s {
		return decimal.Zero
	}

	ns, ne := nightStart.Minutes(), nightEnd.Minutes()
	if ne == ns {
		return decimal.Zero
	}
	if ne < ns {
		ne += minutesPerDay
	}

	// The interval is at most 24h long, so the previous, current and
	// next day's copies of the window cover every possible overlap.
	overlap := 0
	for _, offset := range []int{-minutesPerDay, 0, minutesPerDay} {
		lo := max(s, ns+offset)
		hi := min(e, ne+offset)
		if hi > lo {
			overlap += hi - lo
		}
	}

	return decimal.NewFromInt(int64(overlap)).Div(sixty)
}

// DateOnly truncates t to midnight UTC. Calendar arithmetic in the
// payroll engine works on dates, never on wall-clock instants.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays counts the calendar days from start through end,
// both included. A single-day span returns 1.
func InclusiveDays(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// WorkingDays counts the Monday–Friday days in [start, end] inclusive.
func WorkingDays(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
