package attendance

import (
	"testing"
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func ts(h, m, s int) time.Time {
	return time.Date(2025, 3, 10, h, m, s, 0, time.UTC)
}

func TestClassifyDay_NoRecord(t *testing.T) {
	state := ClassifyDay(nil, ts(10, 0, 0))

	assert.False(t, state.IsAttendanceMarked)
	assert.False(t, state.IsClockedIn)
	assert.False(t, state.IsDayComplete)
}

func TestClassifyDay_NotClockedInRecord(t *testing.T) {
	rec := attendance.Attendance{Status: attendance.StatusNotClockedIn}

	state := ClassifyDay(&rec, ts(10, 0, 0))

	assert.False(t, state.IsAttendanceMarked)
	assert.False(t, state.IsDayComplete)
}

func TestClassifyDay_ClockedIn(t *testing.T) {
	in := ts(9, 0, 0)
	rec := attendance.Attendance{
		Status:  attendance.StatusPresent,
		ClockIn: &in,
	}

	state := ClassifyDay(&rec, ts(11, 30, 45))

	assert.True(t, state.IsAttendanceMarked)
	assert.True(t, state.IsClockedIn)
	assert.False(t, state.IsDayComplete)
	assert.Equal(t, 2, state.WorkedHours)
	assert.Equal(t, 30, state.WorkedMinutes)
	assert.Equal(t, 45, state.WorkedSeconds)
}

func TestClassifyDay_ClockedOut(t *testing.T) {
	in := ts(9, 0, 0)
	out := ts(17, 15, 0)
	rec := attendance.Attendance{
		Status:   attendance.StatusPresent,
		ClockIn:  &in,
		ClockOut: &out,
	}

	// Worked time is frozen at the clock-out timestamp.
	state := ClassifyDay(&rec, ts(23, 0, 0))

	assert.True(t, state.IsAttendanceMarked)
	assert.False(t, state.IsClockedIn)
	assert.True(t, state.IsDayComplete)
	assert.Equal(t, 8, state.WorkedHours)
	assert.Equal(t, 15, state.WorkedMinutes)
}

func TestClassifyDay_LeaveAndHolidayAreComplete(t *testing.T) {
	for _, status := range []attendance.Status{attendance.StatusLeave, attendance.StatusHoliday} {
		rec := attendance.Attendance{Status: status}

		state := ClassifyDay(&rec, ts(10, 0, 0))

		assert.True(t, state.IsAttendanceMarked, string(status))
		assert.True(t, state.IsDayComplete, string(status))
		assert.False(t, state.IsClockedIn, string(status))
	}
}

// IsClockedIn and IsDayComplete must never be true at the same time.
func TestClassifyDay_ClockStateExclusivity(t *testing.T) {
	in := ts(9, 0, 0)
	out := ts(17, 0, 0)
	records := []*attendance.Attendance{
		nil,
		{Status: attendance.StatusNotClockedIn},
		{Status: attendance.StatusPresent, ClockIn: &in},
		{Status: attendance.StatusPresent, ClockIn: &in, ClockOut: &out},
		{Status: attendance.StatusLeave},
		{Status: attendance.StatusHoliday},
		{Status: attendance.StatusAbsent},
	}

	for _, rec := range records {
		state := ClassifyDay(rec, ts(18, 0, 0))
		assert.False(t, state.IsClockedIn && state.IsDayComplete)
	}
}

func TestAggregateMonth_LossOfPayInvariant(t *testing.T) {
	statuses := map[string]attendance.Status{
		"2025-03-03": attendance.StatusPresent,
		"2025-03-04": attendance.StatusPresent,
		"2025-03-05": attendance.StatusAbsent,
		"2025-03-06": attendance.StatusLeave,
		"2025-03-07": attendance.StatusLeave,
		"2025-03-08": attendance.StatusHoliday,
		"2025-03-09": attendance.StatusNotClockedIn,
	}

	summary := AggregateMonth(statuses)

	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 2, summary.Leave)
	assert.Equal(t, 3, summary.LossOfPayDays)
	assert.LessOrEqual(t, summary.Present+summary.Absent+summary.Leave, len(statuses))
}

func TestAggregateMonth_Empty(t *testing.T) {
	summary := AggregateMonth(map[string]attendance.Status{})

	assert.Zero(t, summary.Present)
	assert.Zero(t, summary.Absent)
	assert.Zero(t, summary.Leave)
	assert.Zero(t, summary.LossOfPayDays)
}

func TestAggregateMonth_UnknownStatusIgnored(t *testing.T) {
	statuses := map[string]attendance.Status{
		"2025-03-03": attendance.Status("HALF_DAY"),
		"2025-03-04": attendance.StatusAbsent,
	}

	summary := AggregateMonth(statuses)

	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.LossOfPayDays)
}
