package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type OvertimeServiceImpl struct {
	cfg          config.PayrollConfig
	overtimeRepo overtime.OvertimeRepository
}

func NewOvertimeService(
	cfg config.PayrollConfig,
	overtimeRepo overtime.OvertimeRepository,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		cfg:          cfg,
		overtimeRepo: overtimeRepo,
	}
}

// SubmitOvertime implements overtime.OvertimeService. A request that
// would collide with an existing same-date interval, or push the day or
// week over its cap, is rejected outright rather than clipped.
func (s *OvertimeServiceImpl) SubmitOvertime(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	start, err := timeutil.ParseClock(req.Start)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := timeutil.ParseClock(req.End)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("invalid end: %w", err)
	}
	if start == end {
		return overtime.OvertimeResponse{}, overtime.ErrInconsistentInterval
	}

	category, err := overtime.ParseCategory(req.Category)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	now := time.Now().UTC()
	interval := overtime.Interval{
		EmployeeID:   req.EmployeeID,
		Date:         timeutil.DateOnly(date),
		Start:        start,
		End:          end,
		Category:     category,
		OverrideRate: req.OverrideRate,
		Status:       approval.StatusPending,
		Reason:       req.Reason,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Cap validation and the insert share one transaction so two
	// concurrent submissions cannot both pass the caps against the same
	// snapshot.
	var created overtime.Interval
	err = s.overtimeRepo.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateCaps(ctx, interval); err != nil {
			return err
		}
		iv, err := s.overtimeRepo.Create(ctx, interval)
		if err != nil {
			return fmt.Errorf("failed to create overtime: %w", err)
		}
		created = iv
		return nil
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.NewOvertimeResponse(created), nil
}

// validateCaps checks the new interval against the employee's existing
// non-rejected intervals in the surrounding week. Rejected and
// cancelled records no longer reserve time.
func (s *OvertimeServiceImpl) validateCaps(ctx context.Context, interval overtime.Interval) error {
	weekStart := mondayOf(interval.Date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	existing, err := s.overtimeRepo.GetByEmployeePeriod(ctx, interval.EmployeeID, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to load existing overtime: %w", err)
	}

	newHours := interval.Hours()
	dailyHours := newHours
	weeklyHours := newHours

	for _, other := range existing {
		if other.Status == approval.StatusRejected || other.Status == approval.StatusCancelled {
			continue
		}

		weeklyHours = weeklyHours.Add(other.Hours())

		if other.Date.Equal(interval.Date) {
			if interval.Overlaps(other) {
				return overtime.ErrOvertimeOverlap
			}
			dailyHours = dailyHours.Add(other.Hours())
		}
	}

	if dailyHours.GreaterThan(decimal.NewFromInt(int64(s.cfg.DailyOvertimeCapHours))) {
		return overtime.ErrDailyOvertimeCapExceeded
	}
	if weeklyHours.GreaterThan(decimal.NewFromInt(int64(s.cfg.WeeklyOvertimeCapHours))) {
		return overtime.ErrWeeklyOvertimeCapExceeded
	}

	return nil
}

// ListOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertime(ctx context.Context, employeeID, startDate, endDate string) ([]overtime.OvertimeResponse, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	intervals, err := s.overtimeRepo.GetByEmployeePeriod(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(intervals))
	for _, iv := range intervals {
		responses = append(responses, overtime.NewOvertimeResponse(iv))
	}
	return responses, nil
}

// mondayOf returns the Monday of the ISO week containing the date.
func mondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
