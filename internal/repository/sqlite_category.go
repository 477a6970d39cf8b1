package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/db"
	"github.com/albertocester96/programma-manutenzioni/internal/domain"
)

const categoryColumns = `id, name, type, created_at, updated_at`

// SQLiteCategoryRepo implements CategoryRepo using a SQLite database.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(dbtx db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: dbtx}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		string(c.Type),
		timeToString(c.CreatedAt),
		timeToString(c.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("category name %s: %w", c.Name, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := r.scanCategory(row.Scan)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
}

func (r *SQLiteCategoryRepo) ListByType(ctx context.Context, t domain.CategoryType) ([]*domain.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories WHERE type = ? ORDER BY name`, string(t))
}

func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var items []*domain.Category
	for rows.Next() {
		c, err := r.scanCategory(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return items, nil
}

func (r *SQLiteCategoryRepo) scanCategory(scan func(dest ...any) error) (*domain.Category, error) {
	var c domain.Category
	var typeStr, createdAtStr, updatedAtStr string

	err := scan(&c.ID, &c.Name, &typeStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}

	c.Type = domain.CategoryType(typeStr)
	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
