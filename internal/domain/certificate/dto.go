package certificate

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
)

type CreateCertificateRequest struct {
	CertificateNumber string  `json:"certificate_number"`
	NameOnCertificate string  `json:"name_on_certificate"`
	RecipientEmail    *string `json:"recipient_email,omitempty"`
	CourseName        string  `json:"course_name"`
	StartDate         string  `json:"start_date"`
	CompletionDate    string  `json:"completion_date"`
	DurationUnit      string  `json:"duration_unit"`
}

func (r *CreateCertificateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CertificateNumber) {
		errs = append(errs, validator.ValidationError{Field: "certificate_number", Message: "is required"})
	}
	if validator.IsEmpty(r.NameOnCertificate) {
		errs = append(errs, validator.ValidationError{Field: "name_on_certificate", Message: "is required"})
	}
	if validator.IsEmpty(r.CourseName) {
		errs = append(errs, validator.ValidationError{Field: "course_name", Message: "is required"})
	}
	if r.RecipientEmail != nil && !validator.IsValidEmail(*r.RecipientEmail) {
		errs = append(errs, validator.ValidationError{Field: "recipient_email", Message: "must be a valid email"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.CompletionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.DurationUnit, []string{string(UnitHour), string(UnitWeek), string(UnitMonth)}) {
		errs = append(errs, validator.ValidationError{Field: "duration_unit", Message: "must be hour, week or month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCertificateRequest struct {
	ID                string
	NameOnCertificate *string `json:"name_on_certificate,omitempty"`
	CourseName        *string `json:"course_name,omitempty"`
	StartDate         *string `json:"start_date,omitempty"`
	CompletionDate    *string `json:"completion_date,omitempty"`
	DurationUnit      *string `json:"duration_unit,omitempty"`
}

func (r *UpdateCertificateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NameOnCertificate != nil && validator.IsEmpty(*r.NameOnCertificate) {
		errs = append(errs, validator.ValidationError{Field: "name_on_certificate", Message: "must not be empty"})
	}
	if r.CourseName != nil && validator.IsEmpty(*r.CourseName) {
		errs = append(errs, validator.ValidationError{Field: "course_name", Message: "must not be empty"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.CompletionDate != nil {
		if _, ok := validator.IsValidDate(*r.CompletionDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.DurationUnit != nil && !validator.IsInSlice(*r.DurationUnit, []string{string(UnitHour), string(UnitWeek), string(UnitMonth)}) {
		errs = append(errs, validator.ValidationError{Field: "duration_unit", Message: "must be hour, week or month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CertificateResponse struct {
	ID                string  `json:"id"`
	CertificateNumber string  `json:"certificate_number"`
	NameOnCertificate string  `json:"name_on_certificate"`
	CourseName        string  `json:"course_name"`
	StartDate         string  `json:"start_date"`
	CompletionDate    string  `json:"completion_date"`
	DurationUnit      string  `json:"duration_unit"`
	Duration          string  `json:"duration"`
	IssuedAt          *string `json:"issued_at,omitempty"`
}

type CertificateFilter struct {
	CourseName *string
	Page       int
	Limit      int
}

type ListCertificateResponse struct {
	TotalCount   int64                 `json:"total_count"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
	Certificates []CertificateResponse `json:"certificates"`
}
