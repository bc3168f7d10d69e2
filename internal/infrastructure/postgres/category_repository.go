package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/entity"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// selectCategory incluye el conteo de productos activos de cada categoría.
const selectCategory = `
	SELECT c.id, c.name, c.display_order, c.is_active, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM products p WHERE p.category_id = c.id AND p.is_active) AS product_count
	FROM categories c`

// Create persiste una nueva categoría y asigna su ID.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (name, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.DisplayOrder, category.IsActive, category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), selectCategory+` WHERE c.id = $1`, id).Scan(
		&c.ID, &c.Name, &c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListAll todas las categorías ordenadas por display_order.
func (r *CategoryRepo) ListAll() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), selectCategory+` ORDER BY c.display_order, c.id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza los campos editables.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, display_order = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.DisplayOrder, category.IsActive, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SoftDelete marca la categoría como inactiva. Repetirlo sigue siendo éxito.
func (r *CategoryRepo) SoftDelete(id int64) (bool, error) {
	query := `UPDATE categories SET is_active = FALSE, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("soft delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists indica si la categoría existe (activa o no).
func (r *CategoryRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}

// NameExists verifica unicidad de nombre, ignorando la fila excludeID si es > 0.
func (r *CategoryRepo) NameExists(name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("category name exists: %w", err)
	}
	return exists, nil
}
