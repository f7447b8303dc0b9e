package employee

import (
	"github.com/shopspring/decimal"
)

// CompensationProfile is the read-only salary snapshot one payroll
// computation works from. It is never mutated by the engine.
type CompensationProfile struct {
	EmployeeID    string
	MonthlySalary decimal.Decimal
	HourlyRate    *decimal.Decimal
}

// ResolveHourlyRate returns the explicit hourly rate when one is set,
// otherwise derives it from the monthly salary over the fixed
// denominator workingDaysPerMonth * standardHoursPerDay. The
// denominator is fixed by policy (22 x 8 = 176 by default) so that
// recomputation is reproducible regardless of the actual calendar.
func (p CompensationProfile) ResolveHourlyRate(workingDaysPerMonth, standardHoursPerDay int) (decimal.Decimal, error) {
	if p.HourlyRate != nil {
		if p.HourlyRate.Sign() <= 0 {
			return decimal.Zero, ErrInvalidCompensationProfile
		}
		return *p.HourlyRate, nil
	}

	if p.MonthlySalary.Sign() <= 0 {
		return decimal.Zero, ErrInvalidCompensationProfile
	}

	denominator := decimal.NewFromInt(int64(workingDaysPerMonth * standardHoursPerDay))
	if denominator.Sign() <= 0 {
		return decimal.Zero, ErrInvalidCompensationProfile
	}

	return p.MonthlySalary.Div(denominator), nil
}
