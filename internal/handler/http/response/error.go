package response

import (
	"errors"
	"net/http"

	"github.com/nexhr/hr-panel-go/internal/domain/attendance"
	"github.com/nexhr/hr-panel-go/internal/domain/auth"
	"github.com/nexhr/hr-panel-go/internal/domain/catalog"
	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
	"github.com/nexhr/hr-panel-go/internal/domain/user"
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "A login account already exists for this email")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this day")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Salary slip domain errors
	case errors.Is(err, salaryslip.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, salaryslip.ErrSlipAlreadyPublished):
		Conflict(w, "Salary slip has already been published")
	case errors.Is(err, salaryslip.ErrSlipAlreadyExists):
		Conflict(w, "A salary slip already exists for this employee and period")

	// Certificate domain errors
	case errors.Is(err, certificate.ErrCertificateNotFound):
		NotFound(w, "Certificate request not found")
	case errors.Is(err, certificate.ErrCertificateNumberExists):
		Conflict(w, "Certificate number already exists")
	case errors.Is(err, certificate.ErrInvalidDateRange):
		BadRequest(w, "Completion date is before start date", nil)

	// Catalog domain errors
	case errors.Is(err, catalog.ErrEntryNotFound):
		NotFound(w, "Service entry not found")
	case errors.Is(err, catalog.ErrTitleExists):
		Conflict(w, "Service entry title already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
