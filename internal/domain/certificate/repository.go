package certificate

import "context"

type CertificateRepository interface {
	Create(ctx context.Context, cert CertificateRequest) (CertificateRequest, error)
	GetByID(ctx context.Context, id string) (CertificateRequest, error)
	List(ctx context.Context, filter CertificateFilter) ([]CertificateRequest, int64, error)
	Update(ctx context.Context, cert CertificateRequest) error
	Delete(ctx context.Context, id string) error
}
