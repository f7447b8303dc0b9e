package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date,
			   to_char(time_in, 'HH24:MI'), to_char(time_out, 'HH24:MI'),
			   status
		FROM attendance_days
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		var (
			day     attendance.Day
			timeIn  *string
			timeOut *string
			status  string
		)
		if err := rows.Scan(&day.ID, &day.EmployeeID, &day.Date, &timeIn, &timeOut, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}

		if day.TimeIn, err = clockPtr(timeIn); err != nil {
			return nil, fmt.Errorf("invalid time_in for attendance %s: %w", day.ID, err)
		}
		if day.TimeOut, err = clockPtr(timeOut); err != nil {
			return nil, fmt.Errorf("invalid time_out for attendance %s: %w", day.ID, err)
		}
		if day.Status, err = attendance.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("attendance %s: %w", day.ID, err)
		}

		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance days: %w", err)
	}

	return days, nil
}

func clockPtr(s *string) (*timeutil.ClockTime, error) {
	if s == nil {
		return nil, nil
	}
	c, err := timeutil.ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
