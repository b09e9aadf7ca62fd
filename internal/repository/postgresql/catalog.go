package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nexhr/hr-panel-go/internal/domain/catalog"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.CatalogRepository {
	return &catalogRepository{db: db}
}

// Create implements catalog.CatalogRepository.
func (c *catalogRepository) Create(ctx context.Context, entry catalog.ServiceEntry) (catalog.ServiceEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO service_entries (title, summary, icon, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.Title,
		entry.Summary,
		entry.Icon,
		entry.SortOrder,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalog.ServiceEntry{}, catalog.ErrTitleExists
		}
		return catalog.ServiceEntry{}, fmt.Errorf("failed to create service entry: %w", err)
	}

	return entry, nil
}

// GetByID implements catalog.CatalogRepository.
func (c *catalogRepository) GetByID(ctx context.Context, id string) (catalog.ServiceEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, title, summary, icon, sort_order, created_at, updated_at
		FROM service_entries
		WHERE id = $1
	`

	var entry catalog.ServiceEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.Title, &entry.Summary, &entry.Icon, &entry.SortOrder,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return catalog.ServiceEntry{}, fmt.Errorf("failed to get service entry: %w", err)
	}
	return entry, nil
}

// List implements catalog.CatalogRepository.
func (c *catalogRepository) List(ctx context.Context) ([]catalog.ServiceEntry, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, title, summary, icon, sort_order, created_at, updated_at
		FROM service_entries
		ORDER BY sort_order, title
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service entries: %w", err)
	}
	defer rows.Close()

	var entries []catalog.ServiceEntry
	for rows.Next() {
		var entry catalog.ServiceEntry
		err := rows.Scan(
			&entry.ID, &entry.Title, &entry.Summary, &entry.Icon, &entry.SortOrder,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Update implements catalog.CatalogRepository.
func (c *catalogRepository) Update(ctx context.Context, entry catalog.ServiceEntry) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE service_entries
		SET title = $2, summary = $3, icon = $4, sort_order = $5, updated_at = NOW()
		WHERE id = $1
	`

	_, err := q.Exec(ctx, query, entry.ID, entry.Title, entry.Summary, entry.Icon, entry.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to update service entry: %w", err)
	}
	return nil
}

// Delete implements catalog.CatalogRepository.
func (c *catalogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	_, err := q.Exec(ctx, `DELETE FROM service_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service entry: %w", err)
	}
	return nil
}
