package catalog

import (
	"github.com/nexhr/hr-panel-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{Field: "summary", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID        string
	Title     *string `json:"title,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must not be empty"})
	}
	if r.Summary != nil && validator.IsEmpty(*r.Summary) {
		errs = append(errs, validator.ValidationError{Field: "summary", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}
