package attendance

import (
	"time"
)

// Status is the recorded state of one employee day.
type Status string

const (
	StatusPresent      Status = "PRESENT"
	StatusAbsent       Status = "ABSENT"
	StatusLeave        Status = "LEAVE"
	StatusHoliday      Status = "HOLIDAY"
	StatusNotClockedIn Status = "NOT_CLOCKED_IN"
)

type Attendance struct {
	ID                 string
	EmployeeID         string
	Date               time.Time
	Status             Status
	ClockIn            *time.Time
	ClockOut           *time.Time
	WorkPlan           *string
	WorkSummary        *string
	LeaveReason        *string
	WorkHoursInMinutes *int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	EmployeeName *string
}

// DayState is the derived UI-facing state of a single day. A missing
// record is equivalent to StatusNotClockedIn.
type DayState struct {
	IsClockedIn        bool `json:"is_clocked_in"`
	IsAttendanceMarked bool `json:"is_attendance_marked"`
	IsDayComplete      bool `json:"is_day_complete"`
	WorkedHours        int  `json:"worked_hours"`
	WorkedMinutes      int  `json:"worked_minutes"`
	WorkedSeconds      int  `json:"worked_seconds"`
}

// MonthlySummary aggregates per-day statuses over one month.
// LossOfPayDays is always Absent + Leave, recomputed, never stored.
type MonthlySummary struct {
	Present       int `json:"present"`
	Absent        int `json:"absent"`
	Leave         int `json:"leave"`
	LossOfPayDays int `json:"loss_of_pay_days"`
}
