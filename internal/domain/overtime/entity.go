package overtime

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

// Category is the pay-multiplier bucket an overtime interval lands in.
type Category string

const (
	CategoryRegular Category = "regular"
	CategoryHoliday Category = "holiday"
	CategoryWeekend Category = "weekend"
	CategoryNight   Category = "night"
	CategorySpecial Category = "special"
)

// ParseCategory normalizes a submitted category tag. Legacy systems
// tagged special work as "emergency" or "project"; all of those map to
// the special bucket.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "weekday", "":
		return CategoryRegular, nil
	case "holiday":
		return CategoryHoliday, nil
	case "weekend":
		return CategoryWeekend, nil
	case "night":
		return CategoryNight, nil
	case "special", "emergency", "project":
		return CategorySpecial, nil
	}
	return "", ErrInvalidCategory
}

// Interval is one approved-or-pending overtime request. Start and End
// are times of day on Date; End before Start means the work ran past
// midnight.
type Interval struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Start        timeutil.ClockTime
	End          timeutil.ClockTime
	Category     Category
	OverrideRate *decimal.Decimal
	Status       approval.Status
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Hours returns the interval duration in decimal hours with overnight
// wraparound applied.
func (i Interval) Hours() decimal.Decimal {
	return timeutil.HoursBetween(i.Start, i.End)
}

// Overlaps reports whether two same-date intervals share any minute.
// Both intervals are unwrapped onto the same minute axis first.
func (i Interval) Overlaps(other Interval) bool {
	s1, e1 := unwrap(i.Start, i.End)
	s2, e2 := unwrap(other.Start, other.End)
	return s1 < e2 && s2 < e1
}

func unwrap(start, end timeutil.ClockTime) (int, int) {
	s, e := start.Minutes(), end.Minutes()
	if e < s {
		e += 24 * 60
	}
	return s, e
}
