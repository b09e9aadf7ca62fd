package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyMarked     = errors.New("attendance is already marked for today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
