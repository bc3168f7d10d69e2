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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const selectOrder = `
	SELECT id, order_number, customer_name, customer_phone, customer_whatsapp, customer_address,
	       order_status, payment_status, payment_method, sub_total, tax_amount, total_amount,
	       notes, order_date, created_at, updated_at
	FROM orders`

// Create inserta pedido y líneas. Invocar dentro de una transacción (TxRunner)
// para que el alta sea atómica.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (order_number, customer_name, customer_phone, customer_whatsapp, customer_address,
		                    order_status, payment_status, payment_method, sub_total, tax_amount, total_amount,
		                    notes, order_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerName, order.CustomerPhone, order.CustomerWhatsApp, order.CustomerAddress,
		order.OrderStatus, order.PaymentStatus, order.PaymentMethod, order.SubTotal, order.TaxAmount, order.TotalAmount,
		order.Notes, order.OrderDate, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_code, product_name_en, product_name_ar,
			                         size, unit_price, quantity, customization_total, item_total, flavor, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`,
			item.OrderID, item.ProductID, item.ProductCode, item.ProductNameEn, item.ProductNameAr,
			item.Size, item.UnitPrice, item.Quantity, item.CustomizationTotal, item.ItemTotal, item.Flavor, item.CreatedAt,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	return r.getOne(` WHERE id = $1`, id)
}

// GetByNumber obtiene un pedido por su número visible.
func (r *OrderRepo) GetByNumber(orderNumber string) (*entity.Order, error) {
	return r.getOne(` WHERE order_number = $1`, orderNumber)
}

func (r *OrderRepo) getOne(where string, arg any) (*entity.Order, error) {
	ctx := context.Background()
	var o entity.Order
	err := r.q.QueryRow(ctx, selectOrder+where, arg).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone, &o.CustomerWhatsApp, &o.CustomerAddress,
		&o.OrderStatus, &o.PaymentStatus, &o.PaymentMethod, &o.SubTotal, &o.TaxAmount, &o.TotalAmount,
		&o.Notes, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, o *entity.Order) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, product_code, product_name_en, product_name_ar,
		       size, unit_price, quantity, customization_total, item_total, flavor, created_at
		FROM order_items WHERE order_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductCode, &it.ProductNameEn, &it.ProductNameAr,
			&it.Size, &it.UnitPrice, &it.Quantity, &it.CustomizationTotal, &it.ItemTotal, &it.Flavor, &it.CreatedAt); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

const selectSummary = `
	SELECT o.id, o.order_number, o.customer_name, o.customer_phone, o.order_status, o.total_amount,
	       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
	       o.order_date
	FROM orders o`

// ListSummaries resúmenes de todos los pedidos, más recientes primero.
func (r *OrderRepo) ListSummaries() ([]*entity.OrderSummary, error) {
	return r.listSummaries(` ORDER BY o.order_date DESC, o.id DESC`)
}

// ListSummariesByStatus resúmenes filtrados por estado.
func (r *OrderRepo) ListSummariesByStatus(status string) ([]*entity.OrderSummary, error) {
	return r.listSummaries(` WHERE o.order_status = $1 ORDER BY o.order_date DESC, o.id DESC`, status)
}

func (r *OrderRepo) listSummaries(where string, args ...any) ([]*entity.OrderSummary, error) {
	rows, err := r.q.Query(context.Background(), selectSummary+where, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(&s.ID, &s.OrderNumber, &s.CustomerName, &s.CustomerPhone, &s.OrderStatus,
			&s.TotalAmount, &s.ItemCount, &s.OrderDate); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado y refresca updated_at. false si el id no existe.
func (r *OrderRepo) UpdateStatus(id int64, status string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET order_status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// NumberExists indica si un número de pedido ya está tomado.
func (r *OrderRepo) NumberExists(orderNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)`, orderNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("order number exists: %w", err)
	}
	return exists, nil
}
