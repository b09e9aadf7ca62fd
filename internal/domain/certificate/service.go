package certificate

import "context"

// CertificateService defines business logic for certificate requests.
// The derived duration string is recomputed on every write and may hold
// the InvalidDateRange sentinel; issuing is rejected while it does.
type CertificateService interface {
	Create(ctx context.Context, req CreateCertificateRequest) (CertificateResponse, error)
	Get(ctx context.Context, id string) (CertificateResponse, error)
	List(ctx context.Context, filter CertificateFilter) (ListCertificateResponse, error)
	Update(ctx context.Context, req UpdateCertificateRequest) (CertificateResponse, error)
	Delete(ctx context.Context, id string) error

	// IssuePDF renders the certificate document and marks it issued.
	// Returns the bytes plus the deterministic download filename.
	IssuePDF(ctx context.Context, id string) ([]byte, string, error)
}
