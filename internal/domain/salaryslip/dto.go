package salaryslip

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSlipRequest struct {
	EmployeeID  string     `json:"employee_id"`
	PeriodMonth int        `json:"period_month"`
	PeriodYear  int        `json:"period_year"`
	Earnings    []LineItem `json:"earnings"`
	Deductions  []LineItem `json:"deductions"`
}

func (r *CreateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a plausible year"})
	}
	errs = append(errs, validateLineItems("earnings", r.Earnings)...)
	errs = append(errs, validateLineItems("deductions", r.Deductions)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSlipRequest struct {
	ID         string
	Earnings   *[]LineItem `json:"earnings,omitempty"`
	Deductions *[]LineItem `json:"deductions,omitempty"`
}

func (r *UpdateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Earnings != nil {
		errs = append(errs, validateLineItems("earnings", *r.Earnings)...)
	}
	if r.Deductions != nil {
		errs = append(errs, validateLineItems("deductions", *r.Deductions)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLineItems(field string, items []LineItem) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, item := range items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "line item description is required"})
			break
		}
	}
	for _, item := range items {
		if item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "line item amounts must be non-negative"})
			break
		}
	}
	return errs
}

type SlipResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	EmployeeCode     string          `json:"employee_code,omitempty"`
	Position         *string         `json:"position,omitempty"`
	PeriodMonth      int             `json:"period_month"`
	PeriodYear       int             `json:"period_year"`
	Earnings         []LineItem      `json:"earnings"`
	Deductions       []LineItem      `json:"deductions"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	NetSalaryInWords string          `json:"net_salary_in_words"`
	NetSalaryDisplay string          `json:"net_salary_display"`
	Status           string          `json:"status"`
	PublishedAt      *string         `json:"published_at,omitempty"`
}

type SlipFilter struct {
	EmployeeID  *string
	PeriodMonth *int
	PeriodYear  *int
	Status      *string
	Page        int
	Limit       int
}

type ListSlipResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Slips      []SlipResponse `json:"slips"`
}
