package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
)

type categoryRow struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *Repository) GetCategory(ctx context.Context, id uint64) (domain.Category, error) {
	var row categoryRow
	query := `SELECT id, name, description, color, created_at FROM categories WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.ext, &row, query, id); err != nil {
		return domain.Category{}, notFoundOr(err, domain.ErrCategoryNotFound)
	}
	return mapCategoryRowToDomain(row), nil
}

func (r *Repository) CreateCategory(ctx context.Context, category domain.Category) (uint64, error) {
	return insert(ctx, r.ext,
		`INSERT INTO categories (name, description, color, created_at) VALUES (?, ?, ?, ?)`,
		category.Name,
		category.Description,
		category.Color,
		category.CreatedAt,
	)
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	query := `SELECT id, name, description, color, created_at FROM categories ORDER BY name, id`
	if err := sqlx.SelectContext(ctx, r.ext, &rows, query); err != nil {
		return nil, storageError(err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomain(row))
	}
	return categories, nil
}

// DeleteCategory detaches dependent tasks before removing the category so the
// behaviour does not depend on foreign key enforcement.
func (r *Repository) DeleteCategory(ctx context.Context, id uint64) error {
	if _, err := r.ext.ExecContext(ctx, `UPDATE tasks SET category_id = NULL WHERE category_id = ?`, id); err != nil {
		return storageError(err)
	}

	result, err := r.ext.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return storageError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func mapCategoryRowToDomain(row categoryRow) domain.Category {
	return domain.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Color:       row.Color,
		CreatedAt:   row.CreatedAt,
	}
}
