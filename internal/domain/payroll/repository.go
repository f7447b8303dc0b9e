package payroll

import "context"

type PayrollRepository interface {
	GetPayPeriod(ctx context.Context, payPeriodID string) (PayPeriod, error)

	// UpsertResult inserts or overwrites the result keyed by
	// (employee_id, pay_period_id) and returns the stored row. Re-running
	// the computation for the same key is always safe.
	UpsertResult(ctx context.Context, result Result) (Result, error)

	GetResult(ctx context.Context, employeeID, payPeriodID string) (Result, error)
	ListResults(ctx context.Context, payPeriodID string) ([]Result, error)
}
