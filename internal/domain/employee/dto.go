package employee

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Position    string           `json:"position"`
	JoiningDate string           `json:"joining_date"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	// When set, a login account is provisioned alongside the record.
	Password *string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match NNNN-NNNN"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	Name       *string          `json:"name,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Position   *string          `json:"position,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Position    string           `json:"position"`
	JoiningDate string           `json:"joining_date"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive    bool             `json:"is_active"`
}

type EmployeeFilter struct {
	Name       *string
	Position   *string
	ActiveOnly bool
	Page       int
	Limit      int
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
