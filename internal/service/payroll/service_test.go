package payroll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/holiday"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/fixtures"
	statutorysvc "github.com/cmlabs-hris/payroll-engine-go/internal/service/statutory"
)

// ========== FAKES ==========

type fakeEmployeeRepo struct {
	profiles map[string]employee.CompensationProfile
}

func (f *fakeEmployeeRepo) GetCompensationProfile(_ context.Context, employeeID string) (employee.CompensationProfile, error) {
	p, ok := f.profiles[employeeID]
	if !ok {
		return employee.CompensationProfile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

type fakeAttendanceRepo struct {
	days []attendance.Day
}

func (f *fakeAttendanceRepo) GetByEmployeePeriod(_ context.Context, employeeID string, _, _ time.Time) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, d := range f.days {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeOvertimeRepo struct {
	intervals []overtime.Interval
}

func (f *fakeOvertimeRepo) GetApprovedByEmployeePeriod(_ context.Context, employeeID string, _, _ time.Time) ([]overtime.Interval, error) {
	var out []overtime.Interval
	for _, iv := range f.intervals {
		if iv.EmployeeID == employeeID && iv.Status.IsApproved() {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) GetByEmployeePeriod(_ context.Context, employeeID string, _, _ time.Time) ([]overtime.Interval, error) {
	var out []overtime.Interval
	for _, iv := range f.intervals {
		if iv.EmployeeID == employeeID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) Create(_ context.Context, iv overtime.Interval) (overtime.Interval, error) {
	iv.ID = uuid.NewString()
	f.intervals = append(f.intervals, iv)
	return iv, nil
}

func (f *fakeOvertimeRepo) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveRepo struct {
	intervals []leave.Interval
	balances  []leave.Balance
}

func (f *fakeLeaveRepo) GetApprovedByEmployeePeriod(_ context.Context, employeeID string, _, _ time.Time) ([]leave.Interval, error) {
	var out []leave.Interval
	for _, iv := range f.intervals {
		if iv.EmployeeID == employeeID && iv.Status.IsApproved() {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetBalances(_ context.Context, employeeID string) ([]leave.Balance, error) {
	var out []leave.Balance
	for _, b := range f.balances {
		if b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) GetCalendar(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	periods map[string]payroll.PayPeriod
	results map[string]payroll.Result
	upserts int
}

func newFakePayrollRepo(periods ...payroll.PayPeriod) *fakePayrollRepo {
	repo := &fakePayrollRepo{
		periods: make(map[string]payroll.PayPeriod),
		results: make(map[string]payroll.Result),
	}
	for _, p := range periods {
		repo.periods[p.ID] = p
	}
	return repo
}

func (f *fakePayrollRepo) GetPayPeriod(_ context.Context, payPeriodID string) (payroll.PayPeriod, error) {
	p, ok := f.periods[payPeriodID]
	if !ok {
		return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) UpsertResult(_ context.Context, result payroll.Result) (payroll.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := result.EmployeeID + "/" + result.PayPeriodID
	if existing, ok := f.results[key]; ok {
		result.ID = existing.ID
	} else {
		result.ID = uuid.NewString()
	}
	f.results[key] = result
	f.upserts++
	return result, nil
}

func (f *fakePayrollRepo) GetResult(_ context.Context, employeeID, payPeriodID string) (payroll.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.results[employeeID+"/"+payPeriodID]
	if !ok {
		return payroll.Result{}, payroll.ErrPayrollResultNotFound
	}
	return r, nil
}

func (f *fakePayrollRepo) ListResults(_ context.Context, payPeriodID string) ([]payroll.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []payroll.Result
	for _, r := range f.results {
		if r.PayPeriodID == payPeriodID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ========== HARNESS ==========

type serviceFixture struct {
	svc         payroll.PayrollService
	payrollRepo *fakePayrollRepo
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	overtimes   *fakeOvertimeRepo
	leaves      *fakeLeaveRepo
	holidays    *fakeHolidayRepo
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	statutoryCalc, err := statutorysvc.NewCalculator(fixtures.DefaultStatutoryTables())
	require.NoError(t, err)

	f := &serviceFixture{
		payrollRepo: newFakePayrollRepo(testPeriod()),
		employees: &fakeEmployeeRepo{profiles: map[string]employee.CompensationProfile{
			"emp-1": {EmployeeID: "emp-1", MonthlySalary: mustDec("20000")},
		}},
		attendances: &fakeAttendanceRepo{},
		overtimes:   &fakeOvertimeRepo{},
		leaves:      &fakeLeaveRepo{},
		holidays:    &fakeHolidayRepo{},
	}

	f.svc = NewPayrollService(
		testPayrollConfig(),
		f.payrollRepo, f.employees, f.attendances, f.overtimes, f.leaves, f.holidays,
		statutoryCalc,
	)
	return f
}

// ========== TESTS ==========

func TestComputePayrollDerivedRateOvertimeExample(t *testing.T) {
	f := newServiceFixture(t)
	period := testPeriod()

	// Full attendance plus a two-hour approved regular overtime on
	// Monday evening.
	f.attendances.days = fullWeek("09:00", "17:00")
	f.overtimes.intervals = []overtime.Interval{
		approvedInterval(period.StartDate, "18:00", "20:00", overtime.CategoryRegular),
	}

	result, err := f.svc.ComputePayroll(context.Background(), "emp-1", period.ID)
	require.NoError(t, err)

	// 20000 / (22*8) = 113.6363..., kept unrounded until the final
	// overtime amount: 2 * rate * 1.25 = 284.09.
	otBucket, ok := result.Overtime[string(overtime.CategoryRegular)]
	require.True(t, ok)
	assertDecimal(t, "2", otBucket.Quantity)
	assertDecimal(t, "284.09", otBucket.Amount)

	// 40 regular hours at the derived rate: 4545.45.
	assertDecimal(t, "40", result.Regular.Quantity)
	assertDecimal(t, "4545.45", result.Regular.Amount)

	// Statutory deductions for a 20000 salary.
	assertDecimal(t, "900", result.Statutory["social_security"])
	assertDecimal(t, "500", result.Statutory["health_insurance"])
	assertDecimal(t, "100", result.Statutory["provident_fund"])
	assertDecimal(t, "0", result.Statutory["withholding_tax"])

	// Gross = regular + overtime; net = gross - statutory.
	assertDecimal(t, "4829.54", result.GrossPay)
	assertDecimal(t, "3329.54", result.NetPay)
}

func TestComputePayrollIdempotent(t *testing.T) {
	f := newServiceFixture(t)
	period := testPeriod()

	f.attendances.days = fullWeek("09:00", "19:00")
	f.overtimes.intervals = []overtime.Interval{
		approvedInterval(period.StartDate.AddDate(0, 0, 1), "20:00", "23:00", overtime.CategoryRegular),
	}
	f.leaves.balances = []leave.Balance{
		{EmployeeID: "emp-1", TypeName: "Vacation Leave", RemainingDays: mustDec("-1")},
	}

	first, err := f.svc.ComputePayroll(context.Background(), "emp-1", period.ID)
	require.NoError(t, err)
	second, err := f.svc.ComputePayroll(context.Background(), "emp-1", period.ID)
	require.NoError(t, err)

	// Recomputation overwrites the same row and reproduces identical
	// values, including the row ID.
	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.payrollRepo.upserts)
	assert.Len(t, f.payrollRepo.results, 1)
}

func TestComputePayrollFailClosed(t *testing.T) {
	f := newServiceFixture(t)
	period := testPeriod()

	// One leave interval with an unclassifiable type poisons the whole
	// computation.
	f.attendances.days = fullWeek("09:00", "17:00")
	f.leaves.intervals = []leave.Interval{
		approvedLeave("Jury Duty", period.StartDate, period.StartDate),
	}

	_, err := f.svc.ComputePayroll(context.Background(), "emp-1", period.ID)
	require.ErrorIs(t, err, leave.ErrUnknownLeaveType)

	// Nothing partial was persisted.
	assert.Equal(t, 0, f.payrollRepo.upserts)
}

func TestComputePayrollUnknownEmployee(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.ComputePayroll(context.Background(), "emp-404", testPeriod().ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputePayrollUnknownPeriod(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.ComputePayroll(context.Background(), "emp-1", "period-404")
	assert.ErrorIs(t, err, payroll.ErrPayPeriodNotFound)
}

func TestComputePayrollLeaveCoveredDayIsNotAbsence(t *testing.T) {
	f := newServiceFixture(t)
	period := testPeriod()

	// Present four days, on approved sick leave the fifth.
	f.attendances.days = fullWeek("09:00", "17:00")[:4]
	f.leaves.intervals = []leave.Interval{
		approvedLeave("Sick Leave", period.EndDate, period.EndDate),
	}

	result, err := f.svc.ComputePayroll(context.Background(), "emp-1", period.ID)
	require.NoError(t, err)

	assertDecimal(t, "0", result.Absence.Quantity)
	assertDecimal(t, "0.00", result.Absence.Amount)

	sick, ok := result.Leave[string(leave.ClassSick)]
	require.True(t, ok)
	assertDecimal(t, "1", sick.Quantity)
}

func TestRunPayrollIsolatesFailures(t *testing.T) {
	f := newServiceFixture(t)
	period := testPeriod()

	f.employees.profiles["emp-2"] = employee.CompensationProfile{
		EmployeeID: "emp-2", MonthlySalary: mustDec("30000"),
	}
	f.attendances.days = fullWeek("09:00", "17:00")

	outcomes, err := f.svc.RunPayroll(context.Background(), period.ID, payroll.ComputePayrollRequest{
		EmployeeIDs: []string{"emp-1", "emp-404", "emp-2"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Success)
	assert.NotNil(t, outcomes[0].Result)

	assert.False(t, outcomes[1].Success)
	assert.Equal(t, "emp-404", outcomes[1].EmployeeID)
	assert.Contains(t, outcomes[1].Reason, "employee not found")
	assert.Nil(t, outcomes[1].Result)

	assert.True(t, outcomes[2].Success)
}

func TestRunPayrollValidatesRequest(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.RunPayroll(context.Background(), testPeriod().ID, payroll.ComputePayrollRequest{})
	assert.Error(t, err)
}

func TestGetResultNotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.GetResult(context.Background(), "emp-1", testPeriod().ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollResultNotFound)
}
