package overtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID   string           `json:"employee_id"`
	Date         string           `json:"date"`  // "2006-01-02"
	Start        string           `json:"start"` // "15:04"
	End          string           `json:"end"`
	Category     string           `json:"category"`
	OverrideRate *decimal.Decimal `json:"override_rate,omitempty"`
	Reason       *string          `json:"reason,omitempty"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsValidClock(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "must be a valid time (HH:MM)"})
	}
	if !validator.IsValidClock(r.End) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "must be a valid time (HH:MM)"})
	}
	if _, err := ParseCategory(r.Category); err != nil {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be one of regular, holiday, weekend, night, special"})
	}
	if r.OverrideRate != nil && r.OverrideRate.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "override_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	Date         string           `json:"date"`
	Start        string           `json:"start"`
	End          string           `json:"end"`
	Category     string           `json:"category"`
	Hours        decimal.Decimal  `json:"hours"`
	OverrideRate *decimal.Decimal `json:"override_rate,omitempty"`
	Status       string           `json:"status"`
	Reason       *string          `json:"reason,omitempty"`
}

func NewOvertimeResponse(i Interval) OvertimeResponse {
	return OvertimeResponse{
		ID:           i.ID,
		EmployeeID:   i.EmployeeID,
		Date:         i.Date.Format(time.DateOnly),
		Start:        i.Start.String(),
		End:          i.End.String(),
		Category:     string(i.Category),
		Hours:        i.Hours(),
		OverrideRate: i.OverrideRate,
		Status:       string(i.Status),
		Reason:       i.Reason,
	}
}
