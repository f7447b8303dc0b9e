package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) GetPayPeriod(ctx context.Context, payPeriodID string) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, start_date, end_date
		FROM pay_periods
		WHERE id = $1
	`

	var p payroll.PayPeriod
	err := q.QueryRow(ctx, query, payPeriodID).Scan(&p.ID, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
		}
		return payroll.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return p, nil
}

const payrollResultColumns = `
	id, employee_id, pay_period_id, period_start, period_end,
	monthly_salary, hourly_rate,
	regular_quantity, regular_amount,
	overtime, night_diff_quantity, night_diff_amount,
	holiday_quantity, holiday_amount, leave,
	late_minutes, late_deduction,
	absence_quantity, absence_amount,
	unpaid_leave_quantity, unpaid_leave_amount,
	excess_leave_quantity, excess_leave_amount,
	statutory, accrued_vacation_days, accrued_sick_days,
	gross_pay, net_pay
`

func (r *payrollRepository) UpsertResult(ctx context.Context, result payroll.Result) (payroll.Result, error) {
	q := GetQuerier(ctx, r.db)

	overtimeJSON, err := json.Marshal(result.Overtime)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to marshal overtime breakdown: %w", err)
	}
	leaveJSON, err := json.Marshal(result.Leave)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to marshal leave breakdown: %w", err)
	}
	statutoryJSON, err := json.Marshal(result.Statutory)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to marshal statutory breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_results (
			employee_id, pay_period_id, period_start, period_end,
			monthly_salary, hourly_rate,
			regular_quantity, regular_amount,
			overtime, night_diff_quantity, night_diff_amount,
			holiday_quantity, holiday_amount, leave,
			late_minutes, late_deduction,
			absence_quantity, absence_amount,
			unpaid_leave_quantity, unpaid_leave_amount,
			excess_leave_quantity, excess_leave_amount,
			statutory, accrued_vacation_days, accrued_sick_days,
			gross_pay, net_pay
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		ON CONFLICT (employee_id, pay_period_id) DO UPDATE SET
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			monthly_salary = EXCLUDED.monthly_salary,
			hourly_rate = EXCLUDED.hourly_rate,
			regular_quantity = EXCLUDED.regular_quantity,
			regular_amount = EXCLUDED.regular_amount,
			overtime = EXCLUDED.overtime,
			night_diff_quantity = EXCLUDED.night_diff_quantity,
			night_diff_amount = EXCLUDED.night_diff_amount,
			holiday_quantity = EXCLUDED.holiday_quantity,
			holiday_amount = EXCLUDED.holiday_amount,
			leave = EXCLUDED.leave,
			late_minutes = EXCLUDED.late_minutes,
			late_deduction = EXCLUDED.late_deduction,
			absence_quantity = EXCLUDED.absence_quantity,
			absence_amount = EXCLUDED.absence_amount,
			unpaid_leave_quantity = EXCLUDED.unpaid_leave_quantity,
			unpaid_leave_amount = EXCLUDED.unpaid_leave_amount,
			excess_leave_quantity = EXCLUDED.excess_leave_quantity,
			excess_leave_amount = EXCLUDED.excess_leave_amount,
			statutory = EXCLUDED.statutory,
			accrued_vacation_days = EXCLUDED.accrued_vacation_days,
			accrued_sick_days = EXCLUDED.accrued_sick_days,
			gross_pay = EXCLUDED.gross_pay,
			net_pay = EXCLUDED.net_pay,
			updated_at = NOW()
		RETURNING ` + payrollResultColumns

	row := q.QueryRow(ctx, query,
		result.EmployeeID, result.PayPeriodID, result.PeriodStart, result.PeriodEnd,
		result.MonthlySalary, result.HourlyRate,
		result.Regular.Quantity, result.Regular.Amount,
		overtimeJSON, result.NightDiff.Quantity, result.NightDiff.Amount,
		result.Holiday.Quantity, result.Holiday.Amount, leaveJSON,
		result.LateMinutes, result.LateDeduction,
		result.Absence.Quantity, result.Absence.Amount,
		result.UnpaidLeave.Quantity, result.UnpaidLeave.Amount,
		result.ExcessLeave.Quantity, result.ExcessLeave.Amount,
		statutoryJSON, result.AccruedVacationDays, result.AccruedSickDays,
		result.GrossPay, result.NetPay,
	)

	stored, err := scanResult(row)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to upsert payroll result: %w", err)
	}

	return stored, nil
}

func (r *payrollRepository) GetResult(ctx context.Context, employeeID, payPeriodID string) (payroll.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollResultColumns + `
		FROM payroll_results
		WHERE employee_id = $1 AND pay_period_id = $2
	`

	result, err := scanResult(q.QueryRow(ctx, query, employeeID, payPeriodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Result{}, payroll.ErrPayrollResultNotFound
		}
		return payroll.Result{}, fmt.Errorf("failed to get payroll result: %w", err)
	}

	return result, nil
}

func (r *payrollRepository) ListResults(ctx context.Context, payPeriodID string) ([]payroll.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollResultColumns + `
		FROM payroll_results
		WHERE pay_period_id = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, payPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll results: %w", err)
	}
	defer rows.Close()

	var results []payroll.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll results: %w", err)
	}

	return results, nil
}

func scanResult(row rowScanner) (payroll.Result, error) {
	var (
		result        payroll.Result
		overtimeJSON  []byte
		leaveJSON     []byte
		statutoryJSON []byte
	)
	err := row.Scan(
		&result.ID, &result.EmployeeID, &result.PayPeriodID, &result.PeriodStart, &result.PeriodEnd,
		&result.MonthlySalary, &result.HourlyRate,
		&result.Regular.Quantity, &result.Regular.Amount,
		&overtimeJSON, &result.NightDiff.Quantity, &result.NightDiff.Amount,
		&result.Holiday.Quantity, &result.Holiday.Amount, &leaveJSON,
		&result.LateMinutes, &result.LateDeduction,
		&result.Absence.Quantity, &result.Absence.Amount,
		&result.UnpaidLeave.Quantity, &result.UnpaidLeave.Amount,
		&result.ExcessLeave.Quantity, &result.ExcessLeave.Amount,
		&statutoryJSON, &result.AccruedVacationDays, &result.AccruedSickDays,
		&result.GrossPay, &result.NetPay,
	)
	if err != nil {
		return payroll.Result{}, err
	}

	result.Overtime = make(map[string]payroll.Component)
	if err := json.Unmarshal(overtimeJSON, &result.Overtime); err != nil {
		return payroll.Result{}, fmt.Errorf("failed to unmarshal overtime breakdown: %w", err)
	}
	result.Leave = make(map[string]payroll.Component)
	if err := json.Unmarshal(leaveJSON, &result.Leave); err != nil {
		return payroll.Result{}, fmt.Errorf("failed to unmarshal leave breakdown: %w", err)
	}
	result.Statutory = make(map[string]decimal.Decimal)
	if err := json.Unmarshal(statutoryJSON, &result.Statutory); err != nil {
		return payroll.Result{}, fmt.Errorf("failed to unmarshal statutory breakdown: %w", err)
	}

	return result, nil
}
