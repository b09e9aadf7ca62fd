package certificate

import (
	"fmt"
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
)

// ComputeDuration renders the elapsed time between start and end in the
// requested unit. End before start yields the InvalidDateRange sentinel.
// Hours and weeks are floored from elapsed wall time; months are the
// calendar-field difference, decremented when the day of month has not
// been reached yet.
func ComputeDuration(start, end time.Time, unit certificate.DurationUnit) string {
	if end.Before(start) {
		return certificate.InvalidDateRange
	}

	var n int
	switch unit {
	case certificate.UnitHour:
		n = int(end.Sub(start) / time.Hour)
	case certificate.UnitWeek:
		days := int(end.Sub(start) / (24 * time.Hour))
		n = days / 7
	case certificate.UnitMonth:
		n = calendarMonths(start, end)
	default:
		n = calendarMonths(start, end)
	}

	return pluralize(n, unitLabel(unit))
}

func calendarMonths(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

func unitLabel(unit certificate.DurationUnit) string {
	switch unit {
	case certificate.UnitHour:
		return "Hour"
	case certificate.UnitWeek:
		return "Week"
	default:
		return "Month"
	}
}

func pluralize(n int, label string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", label)
	}
	return fmt.Sprintf("%d %ss", n, label)
}
