package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	Update(ctx context.Context, att Attendance) error
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the single record for one employee day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// ListByEmployeeMonth returns all records for an employee within one month.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// InsertHoliday creates HOLIDAY records for every active employee
	// lacking a record on the given date. Returns rows inserted.
	InsertHoliday(ctx context.Context, date time.Time, note string) (int64, error)

	// InsertAbsentees creates ABSENT records for every active employee
	// lacking a record on the given (past) date. Returns rows inserted.
	InsertAbsentees(ctx context.Context, date time.Time) (int64, error)
}
