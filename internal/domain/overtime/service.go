package overtime

import "context"

type OvertimeService interface {
	// SubmitOvertime validates the request against the daily and weekly
	// caps and the employee's existing same-date intervals, then stores
	// it in pending status.
	SubmitOvertime(ctx context.Context, req SubmitOvertimeRequest) (OvertimeResponse, error)

	ListOvertime(ctx context.Context, employeeID, startDate, endDate string) ([]OvertimeResponse, error)
}
