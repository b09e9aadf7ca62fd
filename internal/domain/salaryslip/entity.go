package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. A slip starts as a draft and is published exactly once;
// published slips are immutable.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// LineItem is one earning or deduction row. Amounts are non-negative;
// a missing amount counts as zero.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type SalarySlip struct {
	ID              string
	EmployeeID      string
	PeriodMonth     int
	PeriodYear      int
	Earnings        []LineItem
	Deductions      []LineItem
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          Status
	PublishedAt     *time.Time
	PdfPath         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Position     *string
}
