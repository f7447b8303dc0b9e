package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/statutory"
)

// Calculator computes every statutory deduction from a monthly
// compensation amount. It is pure: same tables, same salary, same
// output. Monetary results are finalized at 2 decimal places with
// round-half-up; intermediate ratios keep full precision so rounding
// error never cascades across a multi-step formula.
type Calculator struct {
	tables statutory.Tables
}

func NewCalculator(tables statutory.Tables) (*Calculator, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid statutory tables: %w", err)
	}
	return &Calculator{tables: tables}, nil
}

// SocialSecurity rounds the salary to the nearest bracket step, clamps
// the salary credit, and applies the fixed contribution rate.
func (c *Calculator) SocialSecurity(monthlySalary decimal.Decimal) decimal.Decimal {
	s := c.tables.SocialSecurity

	credit := monthlySalary.Div(s.Step).Round(0).Mul(s.Step)
	if credit.LessThan(s.MinCredit) {
		credit = s.MinCredit
	}
	if credit.GreaterThan(s.MaxCredit) {
		credit = s.MaxCredit
	}

	return credit.Mul(s.Rate).Round(2)
}

// HealthInsurance takes the scheme percentage of salary, clamps the
// total premium, then applies the employee share. The clamp happens
// before the share split.
func (c *Calculator) HealthInsurance(monthlySalary decimal.Decimal) decimal.Decimal {
	s := c.tables.HealthInsurance

	premium := monthlySalary.Mul(s.Rate)
	if premium.LessThan(s.MinContribution) {
		premium = s.MinContribution
	}
	if premium.GreaterThan(s.MaxContribution) {
		premium = s.MaxContribution
	}

	return premium.Mul(s.EmployeeShare).Round(2)
}

// ProvidentFund applies the lower rate at or below the threshold and
// the upper rate above it, capped at the scheme maximum.
func (c *Calculator) ProvidentFund(monthlySalary decimal.Decimal) decimal.Decimal {
	s := c.tables.ProvidentFund

	rate := s.UpperRate
	if monthlySalary.LessThanOrEqual(s.Threshold) {
		rate = s.LowerRate
	}

	contribution := monthlySalary.Mul(rate)
	if contribution.GreaterThan(s.MaxContribution) {
		contribution = s.MaxContribution
	}

	return contribution.Round(2)
}

// WithholdingTax evaluates the progressive bracket table. The bracket
// containing the salary is found with salary <= upperBound, so a salary
// exactly on a boundary belongs to the lower bracket.
func (c *Calculator) WithholdingTax(monthlySalary decimal.Decimal) decimal.Decimal {
	for _, b := range c.tables.TaxBrackets {
		if b.UpperBound == nil || monthlySalary.LessThanOrEqual(*b.UpperBound) {
			excess := monthlySalary.Sub(b.LowerBound)
			if excess.IsNegative() {
				excess = decimal.Zero
			}
			return b.BaseAmount.Add(excess.Mul(b.MarginalRate)).Round(2)
		}
	}
	// Unreachable with a validated table; the last bracket is unbounded.
	return decimal.Zero
}

// All returns every scheme's deduction keyed by scheme name.
func (c *Calculator) All(monthlySalary decimal.Decimal) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		string(statutory.SchemeSocialSecurity):  c.SocialSecurity(monthlySalary),
		string(statutory.SchemeHealthInsurance): c.HealthInsurance(monthlySalary),
		string(statutory.SchemeProvidentFund):   c.ProvidentFund(monthlySalary),
		string(statutory.SchemeWithholdingTax):  c.WithholdingTax(monthlySalary),
	}
}
