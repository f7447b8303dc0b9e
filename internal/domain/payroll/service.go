package payroll

import "context"

type PayrollService interface {
	// ComputePayroll runs the full pipeline for one employee and
	// persists the result. Any missing or invalid input fails the whole
	// computation; nothing partial is stored.
	ComputePayroll(ctx context.Context, employeeID, payPeriodID string) (ResultResponse, error)

	// RunPayroll computes every requested employee concurrently and
	// reports a per-employee outcome. One employee's failure never
	// aborts the rest of the batch.
	RunPayroll(ctx context.Context, payPeriodID string, req ComputePayrollRequest) ([]ComputeOutcome, error)

	// SavePayrollResult upserts an externally assembled result keyed by
	// (employee, pay period).
	SavePayrollResult(ctx context.Context, result Result) (ResultResponse, error)

	GetResult(ctx context.Context, employeeID, payPeriodID string) (ResultResponse, error)
	ListResults(ctx context.Context, payPeriodID string) ([]ResultResponse, error)
}
