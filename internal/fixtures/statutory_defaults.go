package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/statutory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// DefaultStatutoryTables returns the compiled-in statutory scheme
// parameters. They are a starting point for a single jurisdiction;
// deployments replace them from configuration, never by editing the
// engines.
func DefaultStatutoryTables() statutory.Tables {
	return statutory.Tables{
		// Bracketed salary credit: salary rounded to the nearest 500,
		// clamped to [4000, 30000], employee share 4.5%.
		SocialSecurity: statutory.SalaryCreditScheme{
			Step:      dec("500"),
			MinCredit: dec("4000"),
			MaxCredit: dec("30000"),
			Rate:      dec("0.045"),
		},
		// 5% of salary, premium clamped to [500, 5000], split 50/50
		// between employer and employee.
		HealthInsurance: statutory.ClampedPercentScheme{
			Rate:            dec("0.05"),
			MinContribution: dec("500"),
			MaxContribution: dec("5000"),
			EmployeeShare:   dec("0.5"),
		},
		// 1% at or below the threshold, 2% above, capped at 100.
		ProvidentFund: statutory.TieredPercentScheme{
			Threshold:       dec("1500"),
			LowerRate:       dec("0.01"),
			UpperRate:       dec("0.02"),
			MaxContribution: dec("100"),
		},
		// Monthly progressive withholding table. The boundary salary
		// belongs to the lower bracket.
		TaxBrackets: []statutory.DeductionBracket{
			{LowerBound: dec("0"), UpperBound: decPtr("20833"), BaseAmount: dec("0"), MarginalRate: dec("0")},
			{LowerBound: dec("20833"), UpperBound: decPtr("33332"), BaseAmount: dec("0"), MarginalRate: dec("0.15")},
			{LowerBound: dec("33332"), UpperBound: decPtr("66666"), BaseAmount: dec("1874.85"), MarginalRate: dec("0.20")},
			{LowerBound: dec("66666"), UpperBound: decPtr("166666"), BaseAmount: dec("8541.65"), MarginalRate: dec("0.25")},
			{LowerBound: dec("166666"), UpperBound: decPtr("666666"), BaseAmount: dec("33541.65"), MarginalRate: dec("0.30")},
			{LowerBound: dec("666666"), UpperBound: nil, BaseAmount: dec("183541.65"), MarginalRate: dec("0.35")},
		},
	}
}
