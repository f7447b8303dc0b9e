package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/timeutil"
)

func clock(s string) *timeutil.ClockTime {
	c := timeutil.MustParseClock(s)
	return &c
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
	}{
		{"present", StatusPresent},
		{"on_leave", StatusOnLeave},
		{"absent", StatusAbsent},
	}
	for _, c := range cases {
		got, err := ParseStatus(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseStatus("vacationing")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDayHoursWorkedMissingPunch(t *testing.T) {
	day := Day{TimeIn: clock("09:00")}
	assert.True(t, day.HoursWorked().IsZero())
}

func TestDayIsLate(t *testing.T) {
	start := timeutil.MustParseClock("09:00")

	onTime := Day{TimeIn: clock("09:00")}
	assert.False(t, onTime.IsLate(start, 0))

	late := Day{TimeIn: clock("09:20")}
	assert.True(t, late.IsLate(start, 0))
	assert.Equal(t, 20, late.MinutesLate(start, 0))

	// Within grace is not late; one past it is.
	assert.False(t, late.IsLate(start, 20))
	assert.True(t, late.IsLate(start, 19))

	missing := Day{}
	assert.False(t, missing.IsLate(start, 0))
}
