package employee

import "context"

type EmployeeRepository interface {
	GetCompensationProfile(ctx context.Context, employeeID string) (CompensationProfile, error)
}
