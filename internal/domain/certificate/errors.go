package certificate

import "errors"

var (
	ErrCertificateNotFound     = errors.New("certificate request not found")
	ErrCertificateNumberExists = errors.New("certificate number already exists")
	ErrInvalidDateRange        = errors.New("completion date is before start date")
)
