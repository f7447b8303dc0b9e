package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/holiday"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) GetCalendar(ctx context.Context, startDate, endDate time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name, is_regular
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.Name, &h.IsRegular); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
