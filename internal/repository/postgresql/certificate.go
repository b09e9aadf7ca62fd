package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type certificateRepository struct {
	db *database.DB
}

func NewCertificateRepository(db *database.DB) certificate.CertificateRepository {
	return &certificateRepository{db: db}
}

const certificateColumns = `
	c.id, c.certificate_number, c.name_on_certificate, c.recipient_email,
	c.course_name, c.start_date, c.completion_date, c.duration_unit,
	c.duration, c.issued_at, c.created_at, c.updated_at`

func scanCertificate(row interface{ Scan(dest ...any) error }, cert *certificate.CertificateRequest) error {
	return row.Scan(
		&cert.ID, &cert.CertificateNumber, &cert.NameOnCertificate, &cert.RecipientEmail,
		&cert.CourseName, &cert.StartDate, &cert.CompletionDate, &cert.DurationUnit,
		&cert.Duration, &cert.IssuedAt, &cert.CreatedAt, &cert.UpdatedAt,
	)
}

// Create implements certificate.CertificateRepository.
func (c *certificateRepository) Create(ctx context.Context, cert certificate.CertificateRequest) (certificate.CertificateRequest, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO certificate_requests (
			certificate_number, name_on_certificate, recipient_email,
			course_name, start_date, completion_date, duration_unit, duration
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cert.CertificateNumber,
		cert.NameOnCertificate,
		cert.RecipientEmail,
		cert.CourseName,
		cert.StartDate,
		cert.CompletionDate,
		cert.DurationUnit,
		cert.Duration,
	).Scan(&cert.ID, &cert.CreatedAt, &cert.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return certificate.CertificateRequest{}, certificate.ErrCertificateNumberExists
		}
		return certificate.CertificateRequest{}, fmt.Errorf("failed to create certificate request: %w", err)
	}

	return cert, nil
}

// GetByID implements certificate.CertificateRepository.
func (c *certificateRepository) GetByID(ctx context.Context, id string) (certificate.CertificateRequest, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT` + certificateColumns + `
		FROM certificate_requests c
		WHERE c.id = $1
	`

	var cert certificate.CertificateRequest
	if err := scanCertificate(q.QueryRow(ctx, query, id), &cert); err != nil {
		return certificate.CertificateRequest{}, fmt.Errorf("failed to get certificate request: %w", err)
	}
	return cert, nil
}

// List implements certificate.CertificateRepository.
func (c *certificateRepository) List(ctx context.Context, filter certificate.CertificateFilter) ([]certificate.CertificateRequest, int64, error) {
	q := GetQuerier(ctx, c.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.CourseName != nil && *filter.CourseName != "" {
		conditions = append(conditions, fmt.Sprintf("c.course_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.CourseName+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM certificate_requests c WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count certificate requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+certificateColumns+`
		FROM certificate_requests c
		WHERE %s
		ORDER BY c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list certificate requests: %w", err)
	}
	defer rows.Close()

	var certs []certificate.CertificateRequest
	for rows.Next() {
		var cert certificate.CertificateRequest
		if err := scanCertificate(rows, &cert); err != nil {
			return nil, 0, fmt.Errorf("failed to scan certificate request: %w", err)
		}
		certs = append(certs, cert)
	}
	return certs, total, rows.Err()
}

// Update implements certificate.CertificateRepository.
func (c *certificateRepository) Update(ctx context.Context, cert certificate.CertificateRequest) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE certificate_requests
		SET name_on_certificate = $2, recipient_email = $3, course_name = $4,
			start_date = $5, completion_date = $6, duration_unit = $7,
			duration = $8, issued_at = $9, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query,
		cert.ID,
		cert.NameOnCertificate,
		cert.RecipientEmail,
		cert.CourseName,
		cert.StartDate,
		cert.CompletionDate,
		cert.DurationUnit,
		cert.Duration,
		cert.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update certificate request: %w", err)
	}
	return nil
}

// Delete implements certificate.CertificateRepository.
func (c *certificateRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	_, err := q.Exec(ctx, `DELETE FROM certificate_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate request: %w", err)
	}
	return nil
}
