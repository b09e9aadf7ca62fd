package document

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
)

type OfferLetterRequest struct {
	EmployeeID string  `json:"employee_id"`
	Position   *string `json:"position,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
}

func (r *OfferLetterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "must not be empty"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExperienceLetterRequest struct {
	EmployeeID      string  `json:"employee_id"`
	LastWorkingDate *string `json:"last_working_date,omitempty"`
}

func (r *ExperienceLetterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.LastWorkingDate != nil {
		if _, ok := validator.IsValidDate(*r.LastWorkingDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "last_working_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
