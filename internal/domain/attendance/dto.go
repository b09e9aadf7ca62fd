package attendance

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	WorkPlan string `json:"work_plan"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkPlan) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_plan",
			Message: "work plan is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	WorkSummary string `json:"work_summary"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkSummary) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_summary",
			Message: "work summary is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequest struct {
	Reason string  `json:"reason"`
	Date   *string `json:"date,omitempty"` // defaults to today
}

func (r *LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "leave reason is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkHolidayRequest struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

func (r *MarkHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	ClockInTime  *string  `json:"clock_in_time,omitempty"`
	ClockOutTime *string  `json:"clock_out_time,omitempty"`
	WorkPlan     *string  `json:"work_plan,omitempty"`
	WorkSummary  *string  `json:"work_summary,omitempty"`
	LeaveReason  *string  `json:"leave_reason,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
}

// TodayResponse carries today's record (if any) with its derived state.
type TodayResponse struct {
	Attendance *AttendanceResponse `json:"attendance"`
	State      DayState            `json:"state"`
}

type MonthlySummaryResponse struct {
	Year    int            `json:"year"`
	Month   int            `json:"month"`
	Summary MonthlySummary `json:"summary"`
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(StatusPresent), string(StatusAbsent), string(StatusLeave),
		string(StatusHoliday), string(StatusNotClockedIn),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "unknown attendance status",
		})
	}
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
