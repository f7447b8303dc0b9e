package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/approval"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

type fakeOvertimeRepo struct {
	intervals    []overtime.Interval
	transactions int
}

func (f *fakeOvertimeRepo) GetApprovedByEmployeePeriod(_ context.Context, employeeID string, start, end time.Time) ([]overtime.Interval, error) {
	var out []overtime.Interval
	for _, iv := range f.intervals {
		if iv.EmployeeID == employeeID && iv.Status.IsApproved() && !iv.Date.Before(start) && !iv.Date.After(end) {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) GetByEmployeePeriod(_ context.Context, employeeID string, start, end time.Time) ([]overtime.Interval, error) {
	var out []overtime.Interval
	for _, iv := range f.intervals {
		if iv.EmployeeID == employeeID && !iv.Date.Before(start) && !iv.Date.After(end) {
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
	f.transactions++
	return fn(ctx)
}

func testConfig() config.PayrollConfig {
	return config.PayrollConfig{
		StandardHoursPerDay:    8,
		WorkingDaysPerMonth:    22,
		NightStart:             timeutil.MustParseClock("22:00"),
		NightEnd:               timeutil.MustParseClock("06:00"),
		DailyOvertimeCapHours:  12,
		WeeklyOvertimeCapHours: 60,
	}
}

func existingInterval(employeeID string, date time.Time, start, end string, status approval.Status) overtime.Interval {
	return overtime.Interval{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		Start:      timeutil.MustParseClock(start),
		End:        timeutil.MustParseClock(end),
		Category:   overtime.CategoryRegular,
		Status:     status,
	}
}

func submitRequest(date, start, end string) overtime.SubmitOvertimeRequest {
	return overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       date,
		Start:      start,
		End:        end,
		Category:   "regular",
	}
}

func TestSubmitOvertimeStoredPending(t *testing.T) {
	repo := &fakeOvertimeRepo{}
	svc := NewOvertimeService(testConfig(), repo)

	created, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "18:00", "20:30"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(approval.StatusPending), created.Status)
	assert.True(t, created.Hours.Equal(decimal.RequireFromString("2.5")), "hours %s", created.Hours)
	assert.Equal(t, "regular", created.Category)
}

func TestSubmitOvertimeNormalizesLegacyCategory(t *testing.T) {
	repo := &fakeOvertimeRepo{}
	svc := NewOvertimeService(testConfig(), repo)

	req := submitRequest("2026-03-02", "18:00", "20:00")
	req.Category = "emergency"

	created, err := svc.SubmitOvertime(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(overtime.CategorySpecial), created.Category)
}

func TestSubmitOvertimeChecksAndInsertsInOneTransaction(t *testing.T) {
	repo := &fakeOvertimeRepo{}
	svc := NewOvertimeService(testConfig(), repo)

	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "18:00", "20:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.transactions)
	assert.Len(t, repo.intervals, 1)

	// A rejected submission still paid for its transaction but stored
	// nothing.
	_, err = svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "19:00", "21:00"))
	require.ErrorIs(t, err, overtime.ErrOvertimeOverlap)
	assert.Equal(t, 2, repo.transactions)
	assert.Len(t, repo.intervals, 1)
}

func TestSubmitOvertimeRejectsZeroLength(t *testing.T) {
	repo := &fakeOvertimeRepo{}
	svc := NewOvertimeService(testConfig(), repo)

	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "18:00", "18:00"))
	assert.ErrorIs(t, err, overtime.ErrInconsistentInterval)
}

func TestSubmitOvertimeRejectsInvalidInput(t *testing.T) {
	repo := &fakeOvertimeRepo{}
	svc := NewOvertimeService(testConfig(), repo)

	cases := []struct {
		name   string
		mutate func(*overtime.SubmitOvertimeRequest)
	}{
		{"missing employee", func(r *overtime.SubmitOvertimeRequest) { r.EmployeeID = "" }},
		{"bad date", func(r *overtime.SubmitOvertimeRequest) { r.Date = "03/02/2026" }},
		{"bad clock", func(r *overtime.SubmitOvertimeRequest) { r.Start = "6pm" }},
		{"bad category", func(r *overtime.SubmitOvertimeRequest) { r.Category = "double-secret" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := submitRequest("2026-03-02", "18:00", "20:00")
			c.mutate(&req)
			_, err := svc.SubmitOvertime(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestSubmitOvertimeRejectsOverlap(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeOvertimeRepo{intervals: []overtime.Interval{
		existingInterval("emp-1", date, "18:00", "20:00", approval.StatusPending),
	}}
	svc := NewOvertimeService(testConfig(), repo)

	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "19:00", "21:00"))
	assert.ErrorIs(t, err, overtime.ErrOvertimeOverlap)

	// Adjacent intervals are fine: [18:00,20:00) and [20:00,22:00) share
	// no minute.
	_, err = svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "20:00", "22:00"))
	assert.NoError(t, err)
}

func TestSubmitOvertimeIgnoresRejectedWhenCheckingOverlap(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeOvertimeRepo{intervals: []overtime.Interval{
		existingInterval("emp-1", date, "18:00", "20:00", approval.StatusRejected),
	}}
	svc := NewOvertimeService(testConfig(), repo)

	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "19:00", "21:00"))
	assert.NoError(t, err)
}

func TestSubmitOvertimeDailyCap(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeOvertimeRepo{intervals: []overtime.Interval{
		existingInterval("emp-1", date, "08:00", "16:00", approval.StatusApproved),
	}}
	svc := NewOvertimeService(testConfig(), repo)

	// 8h existing + 5h new = 13h > 12h cap.
	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "16:00", "21:00"))
	assert.ErrorIs(t, err, overtime.ErrDailyOvertimeCapExceeded)

	// Exactly at the cap passes.
	_, err = svc.SubmitOvertime(context.Background(), submitRequest("2026-03-02", "16:00", "20:00"))
	assert.NoError(t, err)
}

func TestSubmitOvertimeWeeklyCap(t *testing.T) {
	// Monday through Friday of one week, 12h each: 60h booked.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var intervals []overtime.Interval
	for i := 0; i < 5; i++ {
		intervals = append(intervals, existingInterval("emp-1", monday.AddDate(0, 0, i), "08:00", "20:00", approval.StatusApproved))
	}
	repo := &fakeOvertimeRepo{intervals: intervals}
	svc := NewOvertimeService(testConfig(), repo)

	// Saturday in the same week busts the weekly cap.
	_, err := svc.SubmitOvertime(context.Background(), submitRequest("2026-03-07", "09:00", "10:00"))
	assert.ErrorIs(t, err, overtime.ErrWeeklyOvertimeCapExceeded)

	// The following Monday starts a fresh week.
	_, err = svc.SubmitOvertime(context.Background(), submitRequest("2026-03-09", "09:00", "10:00"))
	assert.NoError(t, err)
}

func TestListOvertime(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeOvertimeRepo{intervals: []overtime.Interval{
		existingInterval("emp-1", date, "18:00", "20:00", approval.StatusApproved),
		existingInterval("emp-1", date.AddDate(0, 0, 1), "18:00", "19:00", approval.StatusPending),
		existingInterval("emp-2", date, "18:00", "20:00", approval.StatusApproved),
	}}
	svc := NewOvertimeService(testConfig(), repo)

	out, err := svc.ListOvertime(context.Background(), "emp-1", "2026-03-02", "2026-03-08")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = svc.ListOvertime(context.Background(), "emp-1", "bad", "2026-03-08")
	assert.Error(t, err)
}
