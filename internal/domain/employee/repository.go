package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error
	Deactivate(ctx context.Context, id string) error
}
