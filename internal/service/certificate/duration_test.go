package certificate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDuration_InvalidRange(t *testing.T) {
	start := date(2025, time.March, 10)
	end := date(2025, time.March, 9)

	for _, unit := range []certificate.DurationUnit{certificate.UnitHour, certificate.UnitWeek, certificate.UnitMonth} {
		assert.Equal(t, "Invalid Date Range", ComputeDuration(start, end, unit))
	}
}

func TestComputeDuration_SameDay(t *testing.T) {
	d := date(2025, time.March, 10)

	assert.Equal(t, "0 Hours", ComputeDuration(d, d, certificate.UnitHour))
	assert.Equal(t, "0 Weeks", ComputeDuration(d, d, certificate.UnitWeek))
	assert.Equal(t, "0 Months", ComputeDuration(d, d, certificate.UnitMonth))
}

func TestComputeDuration_Hours(t *testing.T) {
	start := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 Hour", ComputeDuration(start, start.Add(90*time.Minute), certificate.UnitHour))
	assert.Equal(t, "24 Hours", ComputeDuration(start, start.Add(24*time.Hour), certificate.UnitHour))
	assert.Equal(t, "0 Hours", ComputeDuration(start, start.Add(59*time.Minute), certificate.UnitHour))
}

func TestComputeDuration_Weeks(t *testing.T) {
	start := date(2025, time.March, 3)

	assert.Equal(t, "0 Weeks", ComputeDuration(start, date(2025, time.March, 9), certificate.UnitWeek))
	assert.Equal(t, "1 Week", ComputeDuration(start, date(2025, time.March, 10), certificate.UnitWeek))
	assert.Equal(t, "2 Weeks", ComputeDuration(start, date(2025, time.March, 17), certificate.UnitWeek))
}

func TestComputeDuration_Months(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"full month", date(2025, time.January, 15), date(2025, time.February, 15), "1 Month"},
		{"one day short", date(2025, time.January, 15), date(2025, time.February, 14), "0 Months"},
		{"across year", date(2024, time.November, 1), date(2025, time.February, 1), "3 Months"},
		{"jan 31 to mar 1", date(2025, time.January, 31), date(2025, time.March, 1), "1 Month"},
		{"twelve months", date(2024, time.March, 10), date(2025, time.March, 10), "12 Months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDuration(tt.start, tt.end, certificate.UnitMonth))
		})
	}
}

func TestComputeDuration_Pluralization(t *testing.T) {
	start := date(2025, time.January, 1)

	assert.Equal(t, "1 Week", ComputeDuration(start, date(2025, time.January, 8), certificate.UnitWeek))
	assert.Equal(t, "3 Weeks", ComputeDuration(start, date(2025, time.January, 22), certificate.UnitWeek))
	assert.Equal(t, "1 Month", ComputeDuration(start, date(2025, time.February, 1), certificate.UnitMonth))
}
