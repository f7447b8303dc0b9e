package statutory

import (
	"github.com/shopspring/decimal"
)

// Scheme identifies one government-mandated withholding.
type Scheme string

const (
	SchemeSocialSecurity  Scheme = "social_security"
	SchemeHealthInsurance Scheme = "health_insurance"
	SchemeProvidentFund   Scheme = "provident_fund"
	SchemeWithholdingTax  Scheme = "withholding_tax"
)

// DeductionBracket is one row of an ordered bracket table. A nil
// UpperBound marks the open-ended top bracket. BaseAmount is the tax
// already owed at the bracket's lower bound; MarginalRate applies to
// the excess over the previous bracket's upper bound.
type DeductionBracket struct {
	LowerBound   decimal.Decimal
	UpperBound   *decimal.Decimal
	BaseAmount   decimal.Decimal
	MarginalRate decimal.Decimal
}

// SalaryCreditScheme rounds the monthly salary to the nearest Step,
// clamps the resulting salary credit between MinCredit and MaxCredit,
// and applies a fixed percentage.
type SalaryCreditScheme struct {
	Step      decimal.Decimal
	MinCredit decimal.Decimal
	MaxCredit decimal.Decimal
	Rate      decimal.Decimal
}

// ClampedPercentScheme takes a percentage of salary, clamps the total
// premium between MinContribution and MaxContribution, then applies the
// employee-share fraction. Clamping happens before the share split.
type ClampedPercentScheme struct {
	Rate            decimal.Decimal
	MinContribution decimal.Decimal
	MaxContribution decimal.Decimal
	EmployeeShare   decimal.Decimal
}

// TieredPercentScheme applies LowerRate at or below Threshold and
// UpperRate above it, capping the contribution at MaxContribution.
type TieredPercentScheme struct {
	Threshold       decimal.Decimal
	LowerRate       decimal.Decimal
	UpperRate       decimal.Decimal
	MaxContribution decimal.Decimal
}

// Tables bundles every statutory scheme's parameters for one
// jurisdiction. The values are configuration, not code: defaults live
// in internal/fixtures and can be replaced wholesale.
type Tables struct {
	SocialSecurity  SalaryCreditScheme
	HealthInsurance ClampedPercentScheme
	ProvidentFund   TieredPercentScheme
	TaxBrackets     []DeductionBracket
}

// Validate checks the tax bracket table: sorted ascending, contiguous,
// non-overlapping, with the open-ended bracket only in last position.
func (t Tables) Validate() error {
	if len(t.TaxBrackets) == 0 {
		return ErrEmptyBracketTable
	}

	prevUpper := decimal.Zero
	for i, b := range t.TaxBrackets {
		if !b.LowerBound.Equal(prevUpper) {
			return ErrBracketsNotContiguous
		}
		if b.UpperBound == nil {
			if i != len(t.TaxBrackets)-1 {
				return ErrUnboundedBracketNotLast
			}
			break
		}
		if b.UpperBound.LessThanOrEqual(b.LowerBound) {
			return ErrBracketsNotAscending
		}
		prevUpper = *b.UpperBound
	}

	if t.TaxBrackets[len(t.TaxBrackets)-1].UpperBound != nil {
		return ErrUnboundedBracketNotLast
	}

	return nil
}
