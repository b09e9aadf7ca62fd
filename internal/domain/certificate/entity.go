package certificate

import "time"

// DurationUnit selects how the course duration is expressed.
type DurationUnit string

const (
	UnitHour  DurationUnit = "hour"
	UnitWeek  DurationUnit = "week"
	UnitMonth DurationUnit = "month"
)

// InvalidDateRange is the sentinel duration for completion < start.
// It is a value, not an error; issuing is gated on it downstream.
const InvalidDateRange = "Invalid Date Range"

type CertificateRequest struct {
	ID                string
	CertificateNumber string
	NameOnCertificate string
	RecipientEmail    *string
	CourseName        string
	StartDate         time.Time
	CompletionDate    time.Time
	DurationUnit      DurationUnit
	Duration          string // derived, recomputed on every write
	IssuedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
