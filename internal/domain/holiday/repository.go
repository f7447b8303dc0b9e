package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	GetCalendar(ctx context.Context, startDate, endDate time.Time) ([]Holiday, error)
}
