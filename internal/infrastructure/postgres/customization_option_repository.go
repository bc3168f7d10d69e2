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

var _ repository.CustomizationOptionRepository = (*CustomizationOptionRepo)(nil)

// CustomizationOptionRepo implementación del puerto sobre PostgreSQL.
type CustomizationOptionRepo struct {
	q Querier
}

// NewCustomizationOptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomizationOptionRepository(q Querier) *CustomizationOptionRepo {
	return &CustomizationOptionRepo{q: q}
}

const selectOption = `
	SELECT id, option_code, name_en, name_ar, price, is_active, display_order, created_at, updated_at
	FROM customization_options`

// Create persiste una nueva opción y asigna su ID.
func (r *CustomizationOptionRepo) Create(option *entity.CustomizationOption) error {
	query := `
		INSERT INTO customization_options (option_code, name_en, name_ar, price, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		option.OptionCode, option.NameEn, option.NameAr, option.Price,
		option.IsActive, option.DisplayOrder, option.CreatedAt, option.UpdatedAt,
	).Scan(&option.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customization option: %w", err)
	}
	return nil
}

// GetByID obtiene una opción. (nil, nil) si no existe.
func (r *CustomizationOptionRepo) GetByID(id int64) (*entity.CustomizationOption, error) {
	var o entity.CustomizationOption
	err := r.q.QueryRow(context.Background(), selectOption+` WHERE id = $1`, id).Scan(
		&o.ID, &o.OptionCode, &o.NameEn, &o.NameAr, &o.Price,
		&o.IsActive, &o.DisplayOrder, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customization option: %w", err)
	}
	return &o, nil
}

// ListAll todas las opciones ordenadas por display_order.
func (r *CustomizationOptionRepo) ListAll() ([]*entity.CustomizationOption, error) {
	rows, err := r.q.Query(context.Background(), selectOption+` ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list customization options: %w", err)
	}
	defer rows.Close()

	var out []*entity.CustomizationOption
	for rows.Next() {
		var o entity.CustomizationOption
		if err := rows.Scan(&o.ID, &o.OptionCode, &o.NameEn, &o.NameAr, &o.Price,
			&o.IsActive, &o.DisplayOrder, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customization option: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// ListActive solo las opciones activas (catálogo público).
func (r *CustomizationOptionRepo) ListActive() ([]*entity.CustomizationOption, error) {
	rows, err := r.q.Query(context.Background(), selectOption+` WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list active customization options: %w", err)
	}
	defer rows.Close()

	var out []*entity.CustomizationOption
	for rows.Next() {
		var o entity.CustomizationOption
		if err := rows.Scan(&o.ID, &o.OptionCode, &o.NameEn, &o.NameAr, &o.Price,
			&o.IsActive, &o.DisplayOrder, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customization option: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// Update actualiza los campos editables.
func (r *CustomizationOptionRepo) Update(option *entity.CustomizationOption) error {
	query := `
		UPDATE customization_options
		SET option_code = $2, name_en = $3, name_ar = $4, price = $5, is_active = $6, display_order = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		option.ID, option.OptionCode, option.NameEn, option.NameAr, option.Price,
		option.IsActive, option.DisplayOrder, option.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customization option: %w", err)
	}
	return nil
}

// Delete borrado físico. false si el id no existe.
func (r *CustomizationOptionRepo) Delete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customization_options WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customization option: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists indica si la opción existe.
func (r *CustomizationOptionRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM customization_options WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("customization option exists: %w", err)
	}
	return exists, nil
}

// CodeExists verifica unicidad de código, ignorando la fila excludeID si es > 0.
func (r *CustomizationOptionRepo) CodeExists(optionCode string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customization_options WHERE option_code = $1 AND id <> $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, optionCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("customization option code exists: %w", err)
	}
	return exists, nil
}
