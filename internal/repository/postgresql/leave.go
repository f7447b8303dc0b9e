package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) GetApprovedByEmployeePeriod(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]leave.Interval, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap, not containment: a leave straddling the period boundary
	// still charges its in-period days.
	query := `
		SELECT id, employee_id, type_name, start_date, end_date, status
		FROM leave_intervals
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave intervals: %w", err)
	}
	defer rows.Close()

	var intervals []leave.Interval
	for rows.Next() {
		var (
			iv     leave.Interval
			status string
		)
		if err := rows.Scan(&iv.ID, &iv.EmployeeID, &iv.TypeName, &iv.StartDate, &iv.EndDate, &status); err != nil {
			return nil, fmt.Errorf("failed to scan leave interval: %w", err)
		}
		if iv.Status, err = approval.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("invalid status for leave %s: %w", iv.ID, err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave intervals: %w", err)
	}

	return intervals, nil
}

func (r *leaveRepository) GetBalances(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, type_name, remaining_days
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY type_name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(&b.EmployeeID, &b.TypeName, &b.RemainingDays); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave balances: %w", err)
	}

	return balances, nil
}
