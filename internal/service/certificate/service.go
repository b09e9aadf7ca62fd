package certificate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hr-panel-go/internal/config"
	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
	"github.com/nexhr/hr-panel-go/internal/domain/document"
	"github.com/nexhr/hr-panel-go/internal/pkg/email"
	"github.com/nexhr/hr-panel-go/internal/pkg/pdf"
)

type CertificateServiceImpl struct {
	certificate.CertificateRepository
	exporter *pdf.Exporter
	mailer   email.EmailService
	company  config.CompanyConfig
}

func NewCertificateService(
	certRepo certificate.CertificateRepository,
	exporter *pdf.Exporter,
	mailer email.EmailService,
	company config.CompanyConfig,
) certificate.CertificateService {
	return &CertificateServiceImpl{
		CertificateRepository: certRepo,
		exporter:              exporter,
		mailer:                mailer,
		company:               company,
	}
}

// Create implements certificate.CertificateService.
func (c *CertificateServiceImpl) Create(ctx context.Context, req certificate.CreateCertificateRequest) (certificate.CertificateResponse, error) {
	if err := req.Validate(); err != nil {
		return certificate.CertificateResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	completion, _ := time.Parse("2006-01-02", req.CompletionDate)
	unit := certificate.DurationUnit(req.DurationUnit)

	cert := certificate.CertificateRequest{
		CertificateNumber: req.CertificateNumber,
		NameOnCertificate: req.NameOnCertificate,
		RecipientEmail:    req.RecipientEmail,
		CourseName:        req.CourseName,
		StartDate:         start,
		CompletionDate:    completion,
		DurationUnit:      unit,
		Duration:          ComputeDuration(start, completion, unit),
	}

	created, err := c.CertificateRepository.Create(ctx, cert)
	if err != nil {
		return certificate.CertificateResponse{}, fmt.Errorf("failed to create certificate request: %w", err)
	}

	return mapCertificateToResponse(created), nil
}

// Get implements certificate.CertificateService.
func (c *CertificateServiceImpl) Get(ctx context.Context, id string) (certificate.CertificateResponse, error) {
	cert, err := c.getCertificate(ctx, id)
	if err != nil {
		return certificate.CertificateResponse{}, err
	}
	return mapCertificateToResponse(cert), nil
}

// List implements certificate.CertificateService.
func (c *CertificateServiceImpl) List(ctx context.Context, filter certificate.CertificateFilter) (certificate.ListCertificateResponse, error) {
	certs, total, err := c.CertificateRepository.List(ctx, filter)
	if err != nil {
		return certificate.ListCertificateResponse{}, fmt.Errorf("failed to list certificate requests: %w", err)
	}

	responses := make([]certificate.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, mapCertificateToResponse(cert))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return certificate.ListCertificateResponse{
		TotalCount:   total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
		Certificates: responses,
	}, nil
}

// Update implements certificate.CertificateService. The derived
// duration string is recomputed whenever dates or the unit change.
func (c *CertificateServiceImpl) Update(ctx context.Context, req certificate.UpdateCertificateRequest) (certificate.CertificateResponse, error) {
	if err := req.Validate(); err != nil {
		return certificate.CertificateResponse{}, err
	}

	cert, err := c.getCertificate(ctx, req.ID)
	if err != nil {
		return certificate.CertificateResponse{}, err
	}

	if req.NameOnCertificate != nil {
		cert.NameOnCertificate = *req.NameOnCertificate
	}
	if req.CourseName != nil {
		cert.CourseName = *req.CourseName
	}
	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		cert.StartDate = start
	}
	if req.CompletionDate != nil {
		completion, _ := time.Parse("2006-01-02", *req.CompletionDate)
		cert.CompletionDate = completion
	}
	if req.DurationUnit != nil {
		cert.DurationUnit = certificate.DurationUnit(*req.DurationUnit)
	}
	cert.Duration = ComputeDuration(cert.StartDate, cert.CompletionDate, cert.DurationUnit)

	if err := c.CertificateRepository.Update(ctx, cert); err != nil {
		return certificate.CertificateResponse{}, fmt.Errorf("failed to update certificate request: %w", err)
	}

	return mapCertificateToResponse(cert), nil
}

// Delete implements certificate.CertificateService.
func (c *CertificateServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := c.getCertificate(ctx, id); err != nil {
		return err
	}
	if err := c.CertificateRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete certificate request: %w", err)
	}
	return nil
}

// IssuePDF implements certificate.CertificateService. Issuing is
// rejected while the duration holds the invalid-range sentinel.
func (c *CertificateServiceImpl) IssuePDF(ctx context.Context, id string) ([]byte, string, error) {
	cert, err := c.getCertificate(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if cert.Duration == certificate.InvalidDateRange {
		return nil, "", certificate.ErrInvalidDateRange
	}

	now := time.Now()
	issuedAt := now
	if cert.IssuedAt != nil {
		issuedAt = *cert.IssuedAt
	}

	filename := document.CertificateFilename(cert.CertificateNumber)

	doc := pdf.CertificateDocument{
		Name:              filename,
		CompanyName:       c.company.Name,
		CertificateNumber: cert.CertificateNumber,
		NameOnCertificate: cert.NameOnCertificate,
		CourseName:        cert.CourseName,
		StartDate:         cert.StartDate.Format("2006-01-02"),
		CompletionDate:    cert.CompletionDate.Format("2006-01-02"),
		Duration:          cert.Duration,
		IssueDate:         issuedAt.Format("2006-01-02"),
	}

	pdfBytes, err := c.exporter.Export(cert.ID, doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export certificate pdf: %w", err)
	}

	// First issue stamps the record and notifies the recipient.
	if cert.IssuedAt == nil {
		cert.IssuedAt = &now
		if err := c.CertificateRepository.Update(ctx, cert); err != nil {
			return nil, "", fmt.Errorf("failed to mark certificate issued: %w", err)
		}
		if cert.RecipientEmail != nil {
			err := c.mailer.SendCertificateIssued(*cert.RecipientEmail, cert.NameOnCertificate, cert.CourseName, cert.CertificateNumber)
			if err != nil {
				slog.Error("failed to send certificate issued email", "certificate_id", cert.ID, "error", err)
			}
		}
	}

	return pdfBytes, filename, nil
}

func (c *CertificateServiceImpl) getCertificate(ctx context.Context, id string) (certificate.CertificateRequest, error) {
	cert, err := c.CertificateRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return certificate.CertificateRequest{}, certificate.ErrCertificateNotFound
		}
		return certificate.CertificateRequest{}, fmt.Errorf("failed to get certificate request: %w", err)
	}
	return cert, nil
}

func mapCertificateToResponse(cert certificate.CertificateRequest) certificate.CertificateResponse {
	resp := certificate.CertificateResponse{
		ID:                cert.ID,
		CertificateNumber: cert.CertificateNumber,
		NameOnCertificate: cert.NameOnCertificate,
		CourseName:        cert.CourseName,
		StartDate:         cert.StartDate.Format("2006-01-02"),
		CompletionDate:    cert.CompletionDate.Format("2006-01-02"),
		DurationUnit:      string(cert.DurationUnit),
		Duration:          cert.Duration,
	}
	if cert.IssuedAt != nil {
		issued := cert.IssuedAt.Format(time.RFC3339)
		resp.IssuedAt = &issued
	}
	return resp
}
