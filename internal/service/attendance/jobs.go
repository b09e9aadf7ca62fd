package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
)

// CloseOutPreviousDayJob settles yesterday's books: employees who never
// clocked in are recorded as absent. Safe to run repeatedly.
func CloseOutPreviousDayJob(svc attendance.AttendanceService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		yesterday := time.Now().AddDate(0, 0, -1)

		closed, err := svc.CloseOutDay(ctx, yesterday)
		if err != nil {
			return err
		}
		if closed > 0 {
			slog.Info("closed out previous day", "date", yesterday.Format("2006-01-02"), "records", closed)
		}
		return nil
	}
}

// MarkWeeklyHolidayJob marks Sundays as company holidays ahead of
// clock-ins. Runs as a no-op on other days.
func MarkWeeklyHolidayJob(svc attendance.AttendanceService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		today := time.Now()
		if today.Weekday() != time.Sunday {
			return nil
		}

		marked, err := svc.MarkHoliday(ctx, attendance.MarkHolidayRequest{
			Date: today.Format("2006-01-02"),
			Note: "Weekly off",
		})
		if err != nil {
			return err
		}
		if marked > 0 {
			slog.Info("marked weekly holiday", "date", today.Format("2006-01-02"), "records", marked)
		}
		return nil
	}
}
