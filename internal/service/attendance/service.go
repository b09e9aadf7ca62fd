package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	runTx postgresql.TxRunner
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	runTx postgresql.TxRunner,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		runTx:                runTx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// employeeIDFromContext extracts the employee_id claim set at login.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// dateOf truncates a timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := dateOf(now)

	var result attendance.Attendance
	err = a.runTx(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, employeeID, today)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		var todayRec *attendance.Attendance
		if err == nil {
			todayRec = &existing
		}
		if ClassifyDay(todayRec, now).IsAttendanceMarked {
			return attendance.ErrAlreadyMarked
		}

		data := attendance.Attendance{
			EmployeeID: employeeID,
			Date:       today,
			Status:     attendance.StatusPresent,
			ClockIn:    &now,
			WorkPlan:   &req.WorkPlan,
		}

		// A NOT_CLOCKED_IN placeholder can exist for the day; move it
		// forward instead of inserting a second row.
		if todayRec != nil {
			data.ID = todayRec.ID
			if err := a.AttendanceRepository.Update(txCtx, data); err != nil {
				return fmt.Errorf("failed to update attendance record: %w", err)
			}
			result = data
			return nil
		}

		created, err := a.AttendanceRepository.Create(txCtx, data)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		result = created
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(result), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()

	var result attendance.Attendance
	err = a.runTx(ctx, func(txCtx context.Context) error {
		rec, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, employeeID, dateOf(now))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrNotClockedIn
			}
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}

		state := ClassifyDay(&rec, now)
		if !state.IsClockedIn {
			if rec.ClockOut != nil {
				return attendance.ErrAlreadyClockedOut
			}
			return attendance.ErrNotClockedIn
		}

		workedMins := int(now.Sub(*rec.ClockIn).Minutes())

		rec.ClockOut = &now
		rec.WorkSummary = &req.WorkSummary
		rec.WorkHoursInMinutes = &workedMins

		if err := a.AttendanceRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		result = rec
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(result), nil
}

// RequestLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RequestLeave(ctx context.Context, req attendance.LeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	day := dateOf(now)
	if req.Date != nil {
		parsed, _ := time.Parse("2006-01-02", *req.Date)
		day = dateOf(parsed)
	}

	var result attendance.Attendance
	err = a.runTx(ctx, func(txCtx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(txCtx, employeeID, day)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		var dayRec *attendance.Attendance
		if err == nil {
			dayRec = &existing
		}
		if ClassifyDay(dayRec, now).IsAttendanceMarked {
			return attendance.ErrAlreadyMarked
		}

		data := attendance.Attendance{
			EmployeeID:  employeeID,
			Date:        day,
			Status:      attendance.StatusLeave,
			LeaveReason: &req.Reason,
		}

		if dayRec != nil {
			data.ID = dayRec.ID
			if err := a.AttendanceRepository.Update(txCtx, data); err != nil {
				return fmt.Errorf("failed to update attendance record: %w", err)
			}
			result = data
			return nil
		}

		created, err := a.AttendanceRepository.Create(txCtx, data)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		result = created
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(result), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := time.Now()

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dateOf(now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TodayResponse{State: ClassifyDay(nil, now)}, nil
		}
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := mapAttendanceToResponse(rec)
	return attendance.TodayResponse{
		Attendance: &resp,
		State:      ClassifyDay(&rec, now),
	}, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, year int, month time.Month) (attendance.MonthlySummaryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	statuses := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		statuses[rec.Date.Format("2006-01-02")] = rec.Status
	}

	return attendance.MonthlySummaryResponse{
		Year:    year,
		Month:   int(month),
		Summary: AggregateMonth(statuses),
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.list(ctx, filter)
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return a.list(ctx, filter)
}

func (a *AttendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// MarkHoliday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkHoliday(ctx context.Context, req attendance.MarkHolidayRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	day, _ := time.Parse("2006-01-02", req.Date)

	inserted, err := a.AttendanceRepository.InsertHoliday(ctx, dateOf(day), req.Note)
	if err != nil {
		return 0, fmt.Errorf("failed to mark holiday: %w", err)
	}
	return inserted, nil
}

// CloseOutDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CloseOutDay(ctx context.Context, date time.Time) (int64, error) {
	inserted, err := a.AttendanceRepository.InsertAbsentees(ctx, dateOf(date))
	if err != nil {
		return 0, fmt.Errorf("failed to close out day: %w", err)
	}
	return inserted, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	var workingHours *float64
	if att.WorkHoursInMinutes != nil {
		hours := float64(*att.WorkHoursInMinutes) / 60.0
		workingHours = &hours
	}

	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		ClockInTime:  timePtrToString(att.ClockIn),
		ClockOutTime: timePtrToString(att.ClockOut),
		WorkPlan:     att.WorkPlan,
		WorkSummary:  att.WorkSummary,
		LeaveReason:  att.LeaveReason,
		WorkingHours: workingHours,
	}
}
