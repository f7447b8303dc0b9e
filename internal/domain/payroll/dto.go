package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

// ========== COMPUTE DTOs ==========

type ComputePayrollRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "employee id must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputeOutcome is the per-employee verdict of a payroll run. Failed
// employees carry a reason and no result; nothing partial is persisted
// for them.
type ComputeOutcome struct {
	EmployeeID string          `json:"employee_id"`
	Success    bool            `json:"success"`
	Reason     string          `json:"reason,omitempty"`
	Result     *ResultResponse `json:"result,omitempty"`
}

// ========== RESULT DTOs ==========

type ComponentResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

type ResultResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PayPeriodID string `json:"pay_period_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`

	Regular   ComponentResponse            `json:"regular"`
	Overtime  map[string]ComponentResponse `json:"overtime"`
	NightDiff ComponentResponse            `json:"night_differential"`
	Holiday   ComponentResponse            `json:"holiday"`
	Leave     map[string]ComponentResponse `json:"leave"`

	LateMinutes   int               `json:"late_minutes"`
	LateDeduction decimal.Decimal   `json:"late_deduction"`
	Absence       ComponentResponse `json:"absence"`
	UnpaidLeave   ComponentResponse `json:"unpaid_leave"`
	ExcessLeave   ComponentResponse `json:"excess_leave"`

	Statutory map[string]decimal.Decimal `json:"statutory_deductions"`

	AccruedVacationDays decimal.Decimal `json:"accrued_vacation_days"`
	AccruedSickDays     decimal.Decimal `json:"accrued_sick_days"`

	GrossPay decimal.Decimal `json:"gross_pay"`
	NetPay   decimal.Decimal `json:"net_pay"`
}

func NewResultResponse(r Result) ResultResponse {
	return ResultResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		PayPeriodID:         r.PayPeriodID,
		PeriodStart:         r.PeriodStart.Format(time.DateOnly),
		PeriodEnd:           r.PeriodEnd.Format(time.DateOnly),
		MonthlySalary:       r.MonthlySalary,
		HourlyRate:          r.HourlyRate,
		Regular:             componentResponse(r.Regular),
		Overtime:            componentResponses(r.Overtime),
		NightDiff:           componentResponse(r.NightDiff),
		Holiday:             componentResponse(r.Holiday),
		Leave:               componentResponses(r.Leave),
		LateMinutes:         r.LateMinutes,
		LateDeduction:       r.LateDeduction,
		Absence:             componentResponse(r.Absence),
		UnpaidLeave:         componentResponse(r.UnpaidLeave),
		ExcessLeave:         componentResponse(r.ExcessLeave),
		Statutory:           r.Statutory,
		AccruedVacationDays: r.AccruedVacationDays,
		AccruedSickDays:     r.AccruedSickDays,
		GrossPay:            r.GrossPay,
		NetPay:              r.NetPay,
	}
}

func componentResponse(c Component) ComponentResponse {
	return ComponentResponse{Quantity: c.Quantity, Amount: c.Amount}
}

func componentResponses(m map[string]Component) map[string]ComponentResponse {
	result := make(map[string]ComponentResponse, len(m))
	for k, c := range m {
		result[k] = componentResponse(c)
	}
	return result
}
