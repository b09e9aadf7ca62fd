package salaryslip

import "context"

type SalarySlipRepository interface {
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id string) (SalarySlip, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (SalarySlip, error)
	List(ctx context.Context, filter SlipFilter) ([]SalarySlip, int64, error)
	Update(ctx context.Context, slip SalarySlip) error
	Delete(ctx context.Context, id string) error
}
