package payroll

import "errors"

var (
	ErrPayPeriodNotFound     = errors.New("pay period not found")
	ErrPayrollResultNotFound = errors.New("payroll result not found")
)
