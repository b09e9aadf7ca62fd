package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nexhr/hr-panel-go/internal/domain/user"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, usr user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (email, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		usr.Email,
		usr.PasswordHash,
		usr.Role,
		usr.EmployeeID,
	).Scan(&usr.ID, &usr.CreatedAt, &usr.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return usr, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return usr, nil
}
