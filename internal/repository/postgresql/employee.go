package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.code, e.name, e.email, e.position, e.joining_date,
	e.base_salary, e.is_active, e.created_at, e.updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }, emp *employee.Employee) error {
	return row.Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.Email, &emp.Position, &emp.JoiningDate,
		&emp.BaseSalary, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (code, name, email, position, joining_date, base_salary, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Code,
		emp.Name,
		emp.Email,
		emp.Position,
		emp.JoiningDate,
		emp.BaseSalary,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1
	`

	var emp employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, id), &emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + `
		FROM employees e
		WHERE e.code = $1
	`

	var emp employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, code), &emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR e.code ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Position != nil && *filter.Position != "" {
		conditions = append(conditions, fmt.Sprintf("e.position = $%d", argIdx))
		args = append(args, *filter.Position)
		argIdx++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "e.is_active")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT`+employeeColumns+`
		FROM employees e
		WHERE %s
		ORDER BY e.name
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, position = $4, base_salary = $5, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, emp.ID, emp.Name, emp.Email, emp.Position, emp.BaseSalary)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (e *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}
