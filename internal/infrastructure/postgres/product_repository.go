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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Las colecciones hijas (precios, tags, sabores,
// vínculos de personalización) viven en tablas aparte y se cargan aparte.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const selectProduct = `
	SELECT p.id, p.product_code, p.name_en, p.name_ar, p.image_url, p.category_id, c.name,
	       p.caffeine_index, p.is_customizable, p.is_active, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// Create persiste el producto con sus colecciones y asigna IDs.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (product_code, name_en, name_ar, image_url, category_id, caffeine_index, is_customizable, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.ProductCode, product.NameEn, product.NameAr, product.ImageURL, product.CategoryID,
		product.CaffeineIndex, product.IsCustomizable, product.IsActive, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	if err := r.insertPrices(ctx, product.ID, product.Prices); err != nil {
		return err
	}
	if err := r.insertTags(ctx, product.ID, product.Tags); err != nil {
		return err
	}
	if err := r.insertFlavors(ctx, product.ID, product.Flavors); err != nil {
		return err
	}
	return r.insertOptionLinks(ctx, product.ID, product.CustomizationOptionIDs)
}

// GetByID obtiene un producto con colecciones. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.getOne(` WHERE p.id = $1`, id)
}

// GetByCode obtiene un producto por su código de negocio.
func (r *ProductRepo) GetByCode(productCode string) (*entity.Product, error) {
	return r.getOne(` WHERE p.product_code = $1`, productCode)
}

func (r *ProductRepo) getOne(where string, arg any) (*entity.Product, error) {
	ctx := context.Background()
	var p entity.Product
	err := r.q.QueryRow(ctx, selectProduct+where, arg).Scan(
		&p.ID, &p.ProductCode, &p.NameEn, &p.NameAr, &p.ImageURL, &p.CategoryID, &p.CategoryName,
		&p.CaffeineIndex, &p.IsCustomizable, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.loadCollections(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive productos activos con colecciones (menú público).
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	return r.list(` WHERE p.is_active ORDER BY c.display_order, p.name_en`)
}

// ListAll todos los productos, activos e inactivos (administración).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	return r.list(` ORDER BY c.display_order, p.name_en`)
}

// ListByCategory productos de una categoría, activos e inactivos.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	return r.list(` WHERE p.category_id = $1 ORDER BY p.name_en`, categoryID)
}

func (r *ProductRepo) list(where string, args ...any) ([]*entity.Product, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, selectProduct+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.NameEn, &p.NameAr, &p.ImageURL, &p.CategoryID, &p.CategoryName,
			&p.CaffeineIndex, &p.IsCustomizable, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := r.loadCollections(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update actualiza campos base; cada colección marcada se reemplaza completa.
func (r *ProductRepo) Update(product *entity.Product, replacePrices, replaceTags, replaceFlavors, replaceOptions bool) error {
	ctx := context.Background()
	query := `
		UPDATE products
		SET name_en = $2, name_ar = $3, image_url = $4, category_id = $5,
		    caffeine_index = $6, is_customizable = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.NameEn, product.NameAr, product.ImageURL, product.CategoryID,
		product.CaffeineIndex, product.IsCustomizable, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if replacePrices {
		if _, err := r.q.Exec(ctx, `DELETE FROM product_prices WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("clear prices: %w", err)
		}
		if err := r.insertPrices(ctx, product.ID, product.Prices); err != nil {
			return err
		}
	}
	if replaceTags {
		if _, err := r.q.Exec(ctx, `DELETE FROM product_tags WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("clear tags: %w", err)
		}
		if err := r.insertTags(ctx, product.ID, product.Tags); err != nil {
			return err
		}
	}
	if replaceFlavors {
		if _, err := r.q.Exec(ctx, `DELETE FROM product_flavors WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("clear flavors: %w", err)
		}
		if err := r.insertFlavors(ctx, product.ID, product.Flavors); err != nil {
			return err
		}
	}
	if replaceOptions {
		if _, err := r.q.Exec(ctx, `DELETE FROM product_customization_options WHERE product_id = $1`, product.ID); err != nil {
			return fmt.Errorf("clear option links: %w", err)
		}
		if err := r.insertOptionLinks(ctx, product.ID, product.CustomizationOptionIDs); err != nil {
			return err
		}
	}
	return nil
}

// SoftDelete marca el producto como inactivo. Repetirlo sigue siendo éxito.
func (r *ProductRepo) SoftDelete(id int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `UPDATE products SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists indica si el producto existe (activo o no).
func (r *ProductRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

// CodeExists verifica unicidad de código, ignorando la fila excludeID si es > 0.
func (r *ProductRepo) CodeExists(productCode string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE product_code = $1 AND id <> $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, productCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("product code exists: %w", err)
	}
	return exists, nil
}

// Any indica si hay al menos un producto.
func (r *ProductRepo) Any() (bool, error) {
	var exists bool
	if err := r.q.QueryRow(context.Background(), `SELECT EXISTS(SELECT 1 FROM products)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("any product: %w", err)
	}
	return exists, nil
}

func (r *ProductRepo) insertPrices(ctx context.Context, productID int64, prices []entity.ProductPrice) error {
	for i := range prices {
		err := r.q.QueryRow(ctx,
			`INSERT INTO product_prices (product_id, size, price, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
			productID, prices[i].Size, prices[i].Price, prices[i].IsActive,
		).Scan(&prices[i].ID)
		if err != nil {
			return fmt.Errorf("insert price: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) insertTags(ctx context.Context, productID int64, tags []string) error {
	for _, tag := range tags {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO product_tags (product_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, tag); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) insertFlavors(ctx context.Context, productID int64, flavors []string) error {
	for _, flavor := range flavors {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO product_flavors (product_id, flavor_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, flavor); err != nil {
			return fmt.Errorf("insert flavor: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) insertOptionLinks(ctx context.Context, productID int64, optionIDs []int64) error {
	for _, optionID := range optionIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO product_customization_options (product_id, customization_option_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			productID, optionID); err != nil {
			return fmt.Errorf("insert option link: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) loadCollections(ctx context.Context, p *entity.Product) error {
	rows, err := r.q.Query(ctx,
		`SELECT id, size, price, is_active FROM product_prices WHERE product_id = $1 ORDER BY id`, p.ID)
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}
	defer rows.Close()
	p.Prices = nil
	for rows.Next() {
		var pr entity.ProductPrice
		if err := rows.Scan(&pr.ID, &pr.Size, &pr.Price, &pr.IsActive); err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		p.Prices = append(p.Prices, pr)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if p.Tags, err = r.stringColumn(ctx,
		`SELECT tag FROM product_tags WHERE product_id = $1 ORDER BY tag`, p.ID); err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	if p.Flavors, err = r.stringColumn(ctx,
		`SELECT flavor_name FROM product_flavors WHERE product_id = $1 ORDER BY flavor_name`, p.ID); err != nil {
		return fmt.Errorf("load flavors: %w", err)
	}

	optRows, err := r.q.Query(ctx,
		`SELECT customization_option_id FROM product_customization_options WHERE product_id = $1 ORDER BY customization_option_id`, p.ID)
	if err != nil {
		return fmt.Errorf("load option links: %w", err)
	}
	defer optRows.Close()
	p.CustomizationOptionIDs = nil
	for optRows.Next() {
		var id int64
		if err := optRows.Scan(&id); err != nil {
			return fmt.Errorf("scan option link: %w", err)
		}
		p.CustomizationOptionIDs = append(p.CustomizationOptionIDs, id)
	}
	return optRows.Err()
}

func (r *ProductRepo) stringColumn(ctx context.Context, query string, arg any) ([]string, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
