package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record. Rejected when attendance is already marked.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record. Rejected unless clocked in.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// RequestLeave marks a day as leave. Rejected when attendance is already marked.
	RequestLeave(ctx context.Context, req LeaveRequest) (AttendanceResponse, error)

	// GetToday returns today's record (if any) plus its derived day state.
	GetToday(ctx context.Context) (TodayResponse, error)

	// MonthlySummary folds one month of statuses into present/absent/leave counts.
	MonthlySummary(ctx context.Context, year int, month time.Month) (MonthlySummaryResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// MarkHoliday creates holiday records for all employees on a date (admin)
	MarkHoliday(ctx context.Context, req MarkHolidayRequest) (int64, error)

	// CloseOutDay marks absent every employee without a record for the date.
	// Invoked by the nightly cron job.
	CloseOutDay(ctx context.Context, date time.Time) (int64, error)
}
