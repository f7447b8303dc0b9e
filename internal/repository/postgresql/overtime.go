package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, employee_id, date,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
	category, override_rate, status, reason, created_at, updated_at
`

func (r *overtimeRepository) GetApprovedByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]overtime.Interval, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_intervals
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND status = 'approved'
		ORDER BY date, start_time
	`
	return r.queryIntervals(ctx, query, employeeID, startDate, endDate)
}

func (r *overtimeRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]overtime.Interval, error) {
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_intervals
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time
	`
	return r.queryIntervals(ctx, query, employeeID, startDate, endDate)
}

func (r *overtimeRepository) queryIntervals(ctx context.Context, query string, args ...interface{}) ([]overtime.Interval, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get overtime intervals: %w", err)
	}
	defer rows.Close()

	var intervals []overtime.Interval
	for rows.Next() {
		iv, err := scanOvertime(rows)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime intervals: %w", err)
	}

	return intervals, nil
}

func (r *overtimeRepository) Create(ctx context.Context, interval overtime.Interval) (overtime.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_intervals (
			employee_id, date, start_time, end_time,
			category, override_rate, status, reason
		) VALUES ($1, $2, $3::time, $4::time, $5, $6, $7, $8)
		RETURNING ` + overtimeColumns

	row := q.QueryRow(ctx, query,
		interval.EmployeeID, interval.Date,
		interval.Start.String(), interval.End.String(),
		string(interval.Category), interval.OverrideRate,
		string(interval.Status), interval.Reason,
	)

	created, err := scanOvertime(row)
	if err != nil {
		return overtime.Interval{}, fmt.Errorf("failed to create overtime interval: %w", err)
	}

	return created, nil
}

func (r *overtimeRepository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, fn)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOvertime(row rowScanner) (overtime.Interval, error) {
	var (
		iv       overtime.Interval
		start    string
		end      string
		category string
		status   string
	)
	err := row.Scan(
		&iv.ID, &iv.EmployeeID, &iv.Date,
		&start, &end,
		&category, &iv.OverrideRate, &status, &iv.Reason, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		return overtime.Interval{}, fmt.Errorf("failed to scan overtime interval: %w", err)
	}

	if iv.Start, err = timeutil.ParseClock(start); err != nil {
		return overtime.Interval{}, fmt.Errorf("invalid start_time for overtime %s: %w", iv.ID, err)
	}
	if iv.End, err = timeutil.ParseClock(end); err != nil {
		return overtime.Interval{}, fmt.Errorf("invalid end_time for overtime %s: %w", iv.ID, err)
	}

	if iv.Category, err = overtime.ParseCategory(category); err != nil {
		return overtime.Interval{}, fmt.Errorf("invalid category for overtime %s: %w", iv.ID, err)
	}
	if iv.Status, err = approval.ParseStatus(status); err != nil {
		return overtime.Interval{}, fmt.Errorf("invalid status for overtime %s: %w", iv.ID, err)
	}

	return iv, nil
}
