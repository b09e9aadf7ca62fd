package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status, a.clock_in, a.clock_out,
	a.work_plan, a.work_summary, a.leave_reason, a.work_hours_in_minutes,
	a.created_at, a.updated_at`

func scanAttendance(row interface{ Scan(dest ...any) error }, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.ClockIn, &att.ClockOut,
		&att.WorkPlan, &att.WorkSummary, &att.LeaveReason, &att.WorkHoursInMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, status, clock_in, clock_out,
			work_plan, work_summary, leave_reason, work_hours_in_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.Status,
		att.ClockIn,
		att.ClockOut,
		att.WorkPlan,
		att.WorkSummary,
		att.LeaveReason,
		att.WorkHoursInMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $2, clock_in = $3, clock_out = $4, work_plan = $5,
			work_summary = $6, leave_reason = $7, work_hours_in_minutes = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query,
		att.ID,
		att.Status,
		att.ClockIn,
		att.ClockOut,
		att.WorkPlan,
		att.WorkSummary,
		att.LeaveReason,
		att.WorkHoursInMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.id = $1
	`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, id), &att); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return att, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND EXTRACT(YEAR FROM a.date) = $2
		  AND EXTRACT(MONTH FROM a.date) = $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+attendanceColumns+`, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, orderClause(filter.SortBy, filter.SortOrder), argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.ClockIn, &att.ClockOut,
			&att.WorkPlan, &att.WorkSummary, &att.LeaveReason, &att.WorkHoursInMinutes,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, total, rows.Err()
}

// orderClause maps user-supplied sort fields onto a whitelisted ORDER
// BY expression. Unknown fields fall back to date descending.
func orderClause(sortBy, sortOrder string) string {
	column, ok := map[string]string{
		"date":          "a.date",
		"status":        "a.status",
		"employee_name": "e.name",
	}[sortBy]
	if !ok {
		column = "a.date"
		sortOrder = "desc"
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction + ", e.name"
}

// InsertHoliday implements attendance.AttendanceRepository. Every
// active employee without a record for the date gets a HOLIDAY row.
func (a *attendanceRepository) InsertHoliday(ctx context.Context, date time.Time, note string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, leave_reason)
		SELECT e.id, $1, $2, $3
		FROM employees e
		WHERE e.is_active
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
	`

	tag, err := q.Exec(ctx, query, date, attendance.StatusHoliday, note)
	if err != nil {
		return 0, fmt.Errorf("failed to insert holiday rows: %w", err)
	}
	return tag.RowsAffected(), nil
}

// InsertAbsentees implements attendance.AttendanceRepository. Active
// employees with no attendance for the date, or a row still in
// NOT_CLOCKED_IN, are closed out as ABSENT.
func (a *attendanceRepository) InsertAbsentees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	updateQuery := `
		UPDATE attendances
		SET status = $2, updated_at = NOW()
		WHERE date = $1 AND status = $3
	`
	updated, err := q.Exec(ctx, updateQuery, date, attendance.StatusAbsent, attendance.StatusNotClockedIn)
	if err != nil {
		return 0, fmt.Errorf("failed to close out stale attendance rows: %w", err)
	}

	insertQuery := `
		INSERT INTO attendances (employee_id, date, status)
		SELECT e.id, $1, $2
		FROM employees e
		WHERE e.is_active
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
	`
	inserted, err := q.Exec(ctx, insertQuery, date, attendance.StatusAbsent)
	if err != nil {
		return 0, fmt.Errorf("failed to insert absentee rows: %w", err)
	}

	return updated.RowsAffected() + inserted.RowsAffected(), nil
}
