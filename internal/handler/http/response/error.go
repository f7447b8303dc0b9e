package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidCompensationProfile):
		UnprocessableEntity(w, "Employee has no positive salary or hourly rate")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPayrollResultNotFound):
		NotFound(w, "Payroll result not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrInvalidCategory):
		BadRequest(w, "Invalid overtime category", nil)
	case errors.Is(err, overtime.ErrInconsistentInterval):
		BadRequest(w, "Overtime interval has zero duration", nil)
	case errors.Is(err, overtime.ErrOvertimeOverlap):
		Conflict(w, "Overtime interval overlaps an existing request")
	case errors.Is(err, overtime.ErrDailyOvertimeCapExceeded):
		UnprocessableEntity(w, "Daily overtime cap exceeded")
	case errors.Is(err, overtime.ErrWeeklyOvertimeCapExceeded):
		UnprocessableEntity(w, "Weekly overtime cap exceeded")

	// Leave domain errors
	case errors.Is(err, leave.ErrUnknownLeaveType):
		UnprocessableEntity(w, "Leave type matches no known classification")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
