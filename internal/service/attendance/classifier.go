package attendance

import (
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
)

// ClassifyDay derives the UI-facing state for one employee day. A nil
// record means the employee has not clocked in yet.
//
// Invariant: IsClockedIn and IsDayComplete are never both true.
func ClassifyDay(rec *attendance.Attendance, now time.Time) attendance.DayState {
	var state attendance.DayState

	if rec == nil || rec.Status == attendance.StatusNotClockedIn {
		return state
	}

	state.IsAttendanceMarked = true
	state.IsClockedIn = rec.Status == attendance.StatusPresent && rec.ClockIn != nil && rec.ClockOut == nil
	state.IsDayComplete = rec.ClockOut != nil ||
		rec.Status == attendance.StatusLeave ||
		rec.Status == attendance.StatusHoliday

	if rec.ClockIn != nil {
		end := now
		if rec.ClockOut != nil {
			end = *rec.ClockOut
		}
		elapsed := end.Sub(*rec.ClockIn)
		if elapsed < 0 {
			elapsed = 0
		}
		state.WorkedHours = int(elapsed.Hours()) % 24
		state.WorkedMinutes = int(elapsed.Minutes()) % 60
		state.WorkedSeconds = int(elapsed.Seconds()) % 60
	}

	return state
}

// AggregateMonth folds a month of per-day statuses into counts.
// Loss-of-pay days are absent plus leave days; statuses outside the
// known set are ignored.
func AggregateMonth(statuses map[string]attendance.Status) attendance.MonthlySummary {
	var summary attendance.MonthlySummary

	for _, status := range statuses {
		switch status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLeave:
			summary.Leave++
		}
	}

	summary.LossOfPayDays = summary.Absent + summary.Leave
	return summary
}
