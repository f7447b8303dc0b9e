package holiday

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type Holiday struct {
	Date      time.Time
	Name      string
	IsRegular bool
}

// Calendar is a date-keyed holiday lookup for one pay period.
type Calendar map[string]Holiday

func NewCalendar(holidays []Holiday) Calendar {
	cal := make(Calendar, len(holidays))
	for _, h := range holidays {
		cal[timeutil.DateOnly(h.Date).Format("2006-01-02")] = h
	}
	return cal
}

// IsHoliday reports whether the date is in the calendar.
func (c Calendar) IsHoliday(date time.Time) bool {
	_, ok := c[timeutil.DateOnly(date).Format("2006-01-02")]
	return ok
}
