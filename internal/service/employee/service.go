package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexhr/hr-panel-go/internal/domain/employee"
	"github.com/nexhr/hr-panel-go/internal/domain/user"
	"github.com/nexhr/hr-panel-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	runTx postgresql.TxRunner
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(
	runTx postgresql.TxRunner,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		runTx:              runTx,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
	}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := e.EmployeeRepository.GetByCode(ctx, req.Code)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)

	emp := employee.Employee{
		Code:        req.Code,
		Name:        req.Name,
		Email:       req.Email,
		Position:    req.Position,
		JoiningDate: joiningDate,
		BaseSalary:  req.BaseSalary,
		IsActive:    true,
	}

	// Employee record and optional login account commit together.
	var created employee.Employee
	err = e.runTx(ctx, func(txCtx context.Context) error {
		created, err = e.EmployeeRepository.Create(txCtx, emp)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		if req.Password == nil {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		_, err = e.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			EmployeeID:   &created.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create login account: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.getEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.getEmployee(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = req.BaseSalary
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := e.getEmployee(ctx, id); err != nil {
		return err
	}
	if err := e.EmployeeRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func (e *EmployeeServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Code:        emp.Code,
		Name:        emp.Name,
		Email:       emp.Email,
		Position:    emp.Position,
		JoiningDate: emp.JoiningDate.Format("2006-01-02"),
		BaseSalary:  emp.BaseSalary,
		IsActive:    emp.IsActive,
	}
}
