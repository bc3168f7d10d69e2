package repository

import "github.com/gitcsdev/drcoffee-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order y sus líneas (DIP).
type OrderRepository interface {
	// Create inserta pedido y líneas. En producción se invoca dentro de una
	// transacción (ver postgres.TxRunner) para que el alta sea atómica.
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	GetByNumber(orderNumber string) (*entity.Order, error)
	ListSummaries() ([]*entity.OrderSummary, error)
	ListSummariesByStatus(status string) ([]*entity.OrderSummary, error)

	// UpdateStatus cambia el estado y refresca updated_at. El llamador ya validó
	// el literal; aquí solo se persiste. false si el id no existe.
	UpdateStatus(id int64, status string) (bool, error)

	NumberExists(orderNumber string) (bool, error)
}
