package user

import "time"

// Role determines which admin-panel routes a user may reach.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
