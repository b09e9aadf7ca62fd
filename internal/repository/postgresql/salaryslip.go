package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type salarySlipRepository struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) salaryslip.SalarySlipRepository {
	return &salarySlipRepository{db: db}
}

// Line items live in jsonb columns; pgx round-trips []LineItem through
// encoding/json.
const slipColumns = `
	s.id, s.employee_id, s.period_month, s.period_year,
	s.earnings, s.deductions, s.total_earnings, s.total_deductions, s.net_salary,
	s.status, s.published_at, s.pdf_path, s.created_at, s.updated_at`

func scanSlip(row interface{ Scan(dest ...any) error }, slip *salaryslip.SalarySlip) error {
	return row.Scan(
		&slip.ID, &slip.EmployeeID, &slip.PeriodMonth, &slip.PeriodYear,
		&slip.Earnings, &slip.Deductions, &slip.TotalEarnings, &slip.TotalDeductions, &slip.NetSalary,
		&slip.Status, &slip.PublishedAt, &slip.PdfPath, &slip.CreatedAt, &slip.UpdatedAt,
	)
}

// Create implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) Create(ctx context.Context, slip salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_slips (
			employee_id, period_month, period_year, earnings, deductions,
			total_earnings, total_deductions, net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		slip.EmployeeID,
		slip.PeriodMonth,
		slip.PeriodYear,
		slip.Earnings,
		slip.Deductions,
		slip.TotalEarnings,
		slip.TotalDeductions,
		slip.NetSalary,
		slip.Status,
	).Scan(&slip.ID, &slip.CreatedAt, &slip.UpdatedAt)

	if err != nil {
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return slip, nil
}

// GetByID implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) GetByID(ctx context.Context, id string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT` + slipColumns + `, e.name, e.code, e.position
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	var slip salaryslip.SalarySlip
	err := q.QueryRow(ctx, query, id).Scan(
		&slip.ID, &slip.EmployeeID, &slip.PeriodMonth, &slip.PeriodYear,
		&slip.Earnings, &slip.Deductions, &slip.TotalEarnings, &slip.TotalDeductions, &slip.NetSalary,
		&slip.Status, &slip.PublishedAt, &slip.PdfPath, &slip.CreatedAt, &slip.UpdatedAt,
		&slip.EmployeeName, &slip.EmployeeCode, &slip.Position,
	)
	if err != nil {
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}
	return slip, nil
}

// GetByEmployeePeriod implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT` + slipColumns + `
		FROM salary_slips s
		WHERE s.employee_id = $1
		  AND s.period_month = $2
		  AND s.period_year = $3
		LIMIT 1
	`

	var slip salaryslip.SalarySlip
	if err := scanSlip(q.QueryRow(ctx, query, employeeID, month, year), &slip); err != nil {
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip for period: %w", err)
	}
	return slip, nil
}

// List implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) List(ctx context.Context, filter salaryslip.SlipFilter) ([]salaryslip.SalarySlip, int64, error) {
	q := GetQuerier(ctx, s.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodMonth != nil {
		conditions = append(conditions, fmt.Sprintf("s.period_month = $%d", argIdx))
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		conditions = append(conditions, fmt.Sprintf("s.period_year = $%d", argIdx))
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM salary_slips s WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary slips: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+slipColumns+`, e.name, e.code, e.position
		FROM salary_slips s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.period_year DESC, s.period_month DESC, e.name
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var slips []salaryslip.SalarySlip
	for rows.Next() {
		var slip salaryslip.SalarySlip
		err := rows.Scan(
			&slip.ID, &slip.EmployeeID, &slip.PeriodMonth, &slip.PeriodYear,
			&slip.Earnings, &slip.Deductions, &slip.TotalEarnings, &slip.TotalDeductions, &slip.NetSalary,
			&slip.Status, &slip.PublishedAt, &slip.PdfPath, &slip.CreatedAt, &slip.UpdatedAt,
			&slip.EmployeeName, &slip.EmployeeCode, &slip.Position,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, slip)
	}
	return slips, total, rows.Err()
}

// Update implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) Update(ctx context.Context, slip salaryslip.SalarySlip) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE salary_slips
		SET earnings = $2, deductions = $3, total_earnings = $4,
			total_deductions = $5, net_salary = $6, status = $7,
			published_at = $8, pdf_path = $9, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query,
		slip.ID,
		slip.Earnings,
		slip.Deductions,
		slip.TotalEarnings,
		slip.TotalDeductions,
		slip.NetSalary,
		slip.Status,
		slip.PublishedAt,
		slip.PdfPath,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary slip: %w", err)
	}
	return nil
}

// Delete implements salaryslip.SalarySlipRepository.
func (s *salarySlipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `DELETE FROM salary_slips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary slip: %w", err)
	}
	return nil
}
