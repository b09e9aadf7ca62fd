package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	Code        string
	Name        string
	Email       string
	Position    string
	JoiningDate time.Time
	BaseSalary  *decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
