package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/holiday"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
	statutorysvc "github.com/cmlabs-hris/payroll-engine-go/internal/service/statutory"
)

// batchConcurrency bounds the number of employees computed in parallel
// during a payroll run.
const batchConcurrency = 8

type PayrollServiceImpl struct {
	cfg            config.PayrollConfig
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository

	attendanceCalc *AttendanceCalculator
	overtimeCalc   *OvertimeCalculator
	leaveCalc      *LeaveCalculator
	statutoryCalc  *statutorysvc.Calculator
}

func NewPayrollService(
	cfg config.PayrollConfig,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	statutoryCalc *statutorysvc.Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		cfg:            cfg,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		attendanceCalc: NewAttendanceCalculator(cfg),
		overtimeCalc:   NewOvertimeCalculator(cfg),
		leaveCalc:      NewLeaveCalculator(cfg),
		statutoryCalc:  statutoryCalc,
	}
}

// ComputePayroll implements payroll.PayrollService. The pipeline is
// strict: any input that cannot be loaded or priced fails the whole
// employee and nothing is persisted for them.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, employeeID, payPeriodID string) (payroll.ResultResponse, error) {
	period, err := s.payrollRepo.GetPayPeriod(ctx, payPeriodID)
	if err != nil {
		return payroll.ResultResponse{}, fmt.Errorf("failed to load pay period: %w", err)
	}

	result, err := s.compute(ctx, employeeID, period)
	if err != nil {
		return payroll.ResultResponse{}, err
	}

	stored, err := s.payrollRepo.UpsertResult(ctx, result)
	if err != nil {
		return payroll.ResultResponse{}, fmt.Errorf("failed to store payroll result: %w", err)
	}

	return payroll.NewResultResponse(stored), nil
}

func (s *PayrollServiceImpl) compute(ctx context.Context, employeeID string, period payroll.PayPeriod) (payroll.Result, error) {
	profile, err := s.employeeRepo.GetCompensationProfile(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load compensation profile: %w", err)
	}

	hourlyRate, err := profile.ResolveHourlyRate(s.cfg.WorkingDaysPerMonth, s.cfg.StandardHoursPerDay)
	if err != nil {
		return payroll.Result{}, err
	}

	holidays, err := s.holidayRepo.GetCalendar(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load holiday calendar: %w", err)
	}
	calendar := holiday.NewCalendar(holidays)

	overtimeIntervals, err := s.overtimeRepo.GetApprovedByEmployeePeriod(ctx, employeeID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load approved overtime: %w", err)
	}

	attendanceDays, err := s.attendanceRepo.GetByEmployeePeriod(ctx, employeeID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	leaveIntervals, err := s.leaveRepo.GetApprovedByEmployeePeriod(ctx, employeeID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load leave: %w", err)
	}

	balances, err := s.leaveRepo.GetBalances(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to load leave balances: %w", err)
	}

	approvedOvertimeDates := make(map[string]bool, len(overtimeIntervals))
	for _, iv := range overtimeIntervals {
		approvedOvertimeDates[iv.Date.Format(time.DateOnly)] = true
	}

	excusedDates := leaveDates(leaveIntervals, period)

	attendanceSummary := s.attendanceCalc.Compute(period, attendanceDays, approvedOvertimeDates, excusedDates, calendar, hourlyRate)
	overtimeSummary := s.overtimeCalc.Compute(overtimeIntervals, calendar, hourlyRate)

	leaveSummary, err := s.leaveCalc.Compute(period, leaveIntervals, balances, hourlyRate)
	if err != nil {
		return payroll.Result{}, err
	}

	return s.assemble(employeeID, period, profile, hourlyRate, attendanceSummary, overtimeSummary, leaveSummary), nil
}

// assemble folds the three summaries and the statutory deductions into
// the final breakdown. All money lands here already rounded; the gross
// and net totals are plain sums.
func (s *PayrollServiceImpl) assemble(
	employeeID string,
	period payroll.PayPeriod,
	profile employee.CompensationProfile,
	hourlyRate decimal.Decimal,
	att AttendanceSummary,
	ot OvertimeSummary,
	lv LeaveSummary,
) payroll.Result {
	result := payroll.Result{
		EmployeeID:    employeeID,
		PayPeriodID:   period.ID,
		PeriodStart:   timeutil.DateOnly(period.StartDate),
		PeriodEnd:     timeutil.DateOnly(period.EndDate),
		MonthlySalary: profile.MonthlySalary,
		HourlyRate:    hourlyRate,
		Overtime:      make(map[string]payroll.Component),
		Leave:         make(map[string]payroll.Component),
	}

	result.Regular = payroll.Component{Quantity: att.RegularHours, Amount: att.RegularPay}

	for category, total := range ot.ByCategory {
		result.Overtime[string(category)] = payroll.Component{Quantity: total.Hours, Amount: total.Amount}
	}

	// Attendance-derived excess hours pay the regular multiplier and
	// merge into the regular overtime bucket.
	if att.AutoOvertimeHours.IsPositive() {
		autoPay := att.AutoOvertimeHours.Mul(hourlyRate).Mul(s.cfg.Multipliers.Regular).Round(2)
		bucket := result.Overtime[string(overtime.CategoryRegular)]
		bucket.Quantity = bucket.Quantity.Add(att.AutoOvertimeHours)
		bucket.Amount = bucket.Amount.Add(autoPay)
		result.Overtime[string(overtime.CategoryRegular)] = bucket
	}

	// Night differential is one shared bucket regardless of whether the
	// hours came from attendance or approved overtime.
	nightHours := att.NightDiffHours.Add(ot.NightDiffHours)
	result.NightDiff = payroll.Component{
		Quantity: nightHours,
		Amount:   nightHours.Mul(hourlyRate).Mul(s.cfg.NightDiffRate).Round(2),
	}

	result.Holiday = payroll.Component{Quantity: att.HolidayHours, Amount: att.HolidayPremium}

	for class, total := range lv.Credits {
		result.Leave[string(class)] = payroll.Component{Quantity: total.Days, Amount: total.Amount}
	}

	result.LateMinutes = att.LateMinutes
	result.LateDeduction = att.LateDeduction
	result.Absence = payroll.Component{
		Quantity: decimal.NewFromInt(int64(att.AbsenceDays)),
		Amount:   att.AbsenceDeduction,
	}
	result.UnpaidLeave = payroll.Component{Quantity: lv.UnpaidDays, Amount: lv.UnpaidDeduction}
	result.ExcessLeave = payroll.Component{Quantity: lv.ExcessDays, Amount: lv.ExcessDeduction}

	result.Statutory = s.statutoryCalc.All(profile.MonthlySalary)

	result.AccruedVacationDays = lv.AccruedVacationDays
	result.AccruedSickDays = lv.AccruedSickDays

	// Gross absorbs the pay-side deductions (late, absence, unpaid and
	// excess leave); only the statutory withholdings sit between gross
	// and net.
	gross := result.Regular.Amount.
		Add(result.NightDiff.Amount).
		Add(result.Holiday.Amount)
	for _, c := range result.Overtime {
		gross = gross.Add(c.Amount)
	}
	for _, c := range result.Leave {
		gross = gross.Add(c.Amount)
	}
	gross = gross.
		Sub(result.LateDeduction).
		Sub(result.Absence.Amount).
		Sub(result.UnpaidLeave.Amount).
		Sub(result.ExcessLeave.Amount)
	result.GrossPay = gross.Round(2)

	result.NetPay = result.GrossPay.Sub(result.TotalStatutory()).Round(2)

	return result
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, payPeriodID string, req payroll.ComputePayrollRequest) ([]payroll.ComputeOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.payrollRepo.GetPayPeriod(ctx, payPeriodID); err != nil {
		return nil, fmt.Errorf("failed to load pay period: %w", err)
	}

	outcomes := make([]payroll.ComputeOutcome, len(req.EmployeeIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, employeeID := range req.EmployeeIDs {
		i, employeeID := i, employeeID
		g.Go(func() error {
			response, err := s.ComputePayroll(ctx, employeeID, payPeriodID)
			if err != nil {
				outcomes[i] = payroll.ComputeOutcome{EmployeeID: employeeID, Success: false, Reason: err.Error()}
				return nil
			}
			outcomes[i] = payroll.ComputeOutcome{EmployeeID: employeeID, Success: true, Result: &response}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// SavePayrollResult implements payroll.PayrollService.
func (s *PayrollServiceImpl) SavePayrollResult(ctx context.Context, result payroll.Result) (payroll.ResultResponse, error) {
	stored, err := s.payrollRepo.UpsertResult(ctx, result)
	if err != nil {
		return payroll.ResultResponse{}, fmt.Errorf("failed to store payroll result: %w", err)
	}
	return payroll.NewResultResponse(stored), nil
}

// GetResult implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetResult(ctx context.Context, employeeID, payPeriodID string) (payroll.ResultResponse, error) {
	result, err := s.payrollRepo.GetResult(ctx, employeeID, payPeriodID)
	if err != nil {
		return payroll.ResultResponse{}, err
	}
	return payroll.NewResultResponse(result), nil
}

// ListResults implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListResults(ctx context.Context, payPeriodID string) ([]payroll.ResultResponse, error) {
	results, err := s.payrollRepo.ListResults(ctx, payPeriodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.ResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, payroll.NewResultResponse(r))
	}
	return responses, nil
}

// leaveDates expands approved leave intervals into the set of period
// dates they cover, keyed by time.DateOnly format.
func leaveDates(intervals []leave.Interval, period payroll.PayPeriod) map[string]bool {
	dates := make(map[string]bool)
	periodStart := timeutil.DateOnly(period.StartDate)
	periodEnd := timeutil.DateOnly(period.EndDate)

	for _, iv := range intervals {
		if !iv.Status.IsApproved() {
			continue
		}
		start := timeutil.DateOnly(iv.StartDate)
		if start.Before(periodStart) {
			start = periodStart
		}
		end := timeutil.DateOnly(iv.EndDate)
		if end.After(periodEnd) {
			end = periodEnd
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dates[d.Format(time.DateOnly)] = true
		}
	}
	return dates
}
