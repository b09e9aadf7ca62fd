package salaryslip

import "errors"

var (
	ErrSlipNotFound         = errors.New("salary slip not found")
	ErrSlipAlreadyPublished = errors.New("salary slip has already been published")
	ErrSlipAlreadyExists    = errors.New("a salary slip already exists for this employee and period")
)
