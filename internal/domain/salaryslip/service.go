package salaryslip

import "context"

// SalarySlipService defines business logic for salary slip drafting,
// publishing and export.
type SalarySlipService interface {
	// CreateDraft builds a new draft slip; totals are computed server-side.
	CreateDraft(ctx context.Context, req CreateSlipRequest) (SlipResponse, error)

	// UpdateDraft replaces line items on a draft. Rejected once published.
	UpdateDraft(ctx context.Context, req UpdateSlipRequest) (SlipResponse, error)

	Get(ctx context.Context, id string) (SlipResponse, error)
	List(ctx context.Context, filter SlipFilter) (ListSlipResponse, error)

	// Publish transitions a draft to published exactly once: it renders
	// the PDF, archives it and emails the employee.
	Publish(ctx context.Context, id string) (SlipResponse, error)

	// DeleteDraft removes an unpublished slip.
	DeleteDraft(ctx context.Context, id string) error

	// ExportPDF renders the slip document and returns the bytes plus the
	// deterministic download filename.
	ExportPDF(ctx context.Context, id string) ([]byte, string, error)
}
