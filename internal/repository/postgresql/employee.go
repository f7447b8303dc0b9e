package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetCompensationProfile(ctx context.Context, employeeID string) (employee.CompensationProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, monthly_salary, hourly_rate
		FROM employee_compensation
		WHERE employee_id = $1
	`

	var p employee.CompensationProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.EmployeeID, &p.MonthlySalary, &p.HourlyRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.CompensationProfile{}, employee.ErrEmployeeNotFound
		}
		return employee.CompensationProfile{}, fmt.Errorf("failed to get compensation profile: %w", err)
	}

	return p, nil
}
