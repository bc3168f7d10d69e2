package usecase

import (
	"github.com/gitcsdev/drcoffee-api/internal/domain"
	"github.com/gitcsdev/drcoffee-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de un pedido existente.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator}
}

// Generate busca el pedido y produce el PDF. ErrNotFound si el id no existe.
func (uc *ReceiptUseCase) Generate(orderID int64) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.Generate(order)
}
